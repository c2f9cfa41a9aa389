package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"reed", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"reed", "unknown"})
	if err == nil || !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"reed"})
	if err == nil || !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandRequiresScriptPath(t *testing.T) {
	err := runCommand(nil)
	if err == nil || !strings.Contains(err.Error(), "script path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandPrintsResult(t *testing.T) {
	scriptPath := writeScript(t, "1 + 2 * 3")
	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "9" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestRunCommandVoidResultPrintsNothing(t *testing.T) {
	scriptPath := writeScript(t, "x: 1 ()")
	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	scriptPath := writeScript(t, `print "should not run"`)
	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-check", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand check failed: %v", err)
	}
	if out != "" {
		t.Fatalf("check should not evaluate, got %q", out)
	}
}

func TestRunCommandCheckReportsScanErrors(t *testing.T) {
	scriptPath := writeScript(t, "[unclosed")
	err := runCommand([]string{"-check", scriptPath})
	if err == nil || !strings.Contains(err.Error(), "load failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandBindsArgs(t *testing.T) {
	scriptPath := writeScript(t, "args/1")
	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath, "first", "second"})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != `"first"` {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestRunCommandExecutionError(t *testing.T) {
	scriptPath := writeScript(t, "no-such-word")
	err := runCommand([]string{scriptPath})
	if err == nil || !strings.Contains(err.Error(), "execution failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.reed")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
