package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/reed-lang/reed/reed"
)

// runPlainREPL is the line-based fallback: no alternate screen, just a
// prompt with history and completion, suitable for dumb terminals and
// piped input.
func runPlainREPL(cfg reed.Config) error {
	engine := reed.NewEngine(cfg)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, name := range engine.Root().Names() {
			if strings.HasPrefix(name, prefix) {
				out = append(out, name)
			}
		}
		return out
	})

	fmt.Println("Reed v0.1.0 (type quit to exit)")
	for {
		input, err := line.Prompt("reed> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			return nil
		}
		line.AppendHistory(input)

		result, err := engine.Run(context.Background(), input)
		if err != nil {
			fmt.Println("**", err)
			continue
		}
		if !result.IsVoid() {
			fmt.Println("==", result.Mold())
		}
	}
}
