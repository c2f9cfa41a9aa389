package reed

import (
	"fmt"
	"strings"
)

// StackFrame is one entry of the call trace attached to a hard error.
type StackFrame struct {
	Label string
	Near  string
}

// RuntimeError is the hard-error channel: malformed programs, type
// mismatches, unbound words, arity violations, illegal refinement
// combinations. It unwinds the frame stack immediately; recovery is the
// caller's business.
type RuntimeError struct {
	Message string
	Near    string
	Frames  []StackFrame
}

const (
	runtimeErrorFrameHead = 8
	runtimeErrorFrameTail = 8
)

func (re *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(re.Message)
	if re.Near != "" {
		fmt.Fprintf(&b, "\n  near: %s", re.Near)
	}
	renderFrame := func(frame StackFrame) {
		if frame.Near != "" {
			fmt.Fprintf(&b, "\n  at %s [%s]", frame.Label, frame.Near)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Label)
		}
	}

	if len(re.Frames) <= runtimeErrorFrameHead+runtimeErrorFrameTail {
		for _, frame := range re.Frames {
			renderFrame(frame)
		}
		return b.String()
	}

	for _, frame := range re.Frames[:runtimeErrorFrameHead] {
		renderFrame(frame)
	}
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", len(re.Frames)-(runtimeErrorFrameHead+runtimeErrorFrameTail))
	for _, frame := range re.Frames[len(re.Frames)-runtimeErrorFrameTail:] {
		renderFrame(frame)
	}

	return b.String()
}

// Unwrap returns nil: RuntimeError is terminal and never wraps a throw.
func (re *RuntimeError) Unwrap() error {
	return nil
}

// errorf raises a hard error at the frame's current position, capturing the
// call trace through the parent links.
func (f *Frame) errorf(format string, args ...any) error {
	re := &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Near:    f.near(),
	}
	for fr := f; fr != nil; fr = fr.parent {
		label := "(eval)"
		if fr.label != "" {
			label = fr.label
		} else if fr.action != nil {
			label = fr.action.label()
		}
		re.Frames = append(re.Frames, StackFrame{Label: label, Near: fr.near()})
	}
	return re
}

// near molds a short window of the input around the cursor for diagnostics.
func (f *Frame) near() string {
	if f.arr == nil {
		return ""
	}
	start := f.idx - 3
	if start < 0 {
		start = 0
	}
	end := f.idx + 3
	if end > f.arr.Len() {
		end = f.arr.Len()
	}
	parts := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		if i == f.idx {
			parts = append(parts, "**")
		}
		parts = append(parts, f.arr.At(i).Mold())
	}
	return strings.Join(parts, " ")
}
