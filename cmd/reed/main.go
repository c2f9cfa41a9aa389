package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reed-lang/reed/reed"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only load the script without evaluating")
	configPath := fs.String("config", "", "configuration file (default .reed.yml if present)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("reed run: script path required")
	}
	scriptPath := remaining[0]
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	engine := reed.NewEngine(cfg)

	block, err := engine.Load(string(input))
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if *checkOnly {
		return nil
	}

	scriptArgs := make([]reed.Value, len(remaining)-1)
	for i, raw := range remaining[1:] {
		scriptArgs[i] = reed.NewText(raw)
	}
	engine.Register("args", reed.NewBlock(scriptArgs))

	result, err := engine.Do(context.Background(), block)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	if !result.IsVoid() {
		fmt.Println(result.Mold())
	}
	return nil
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	plain := fs.Bool("plain", false, "line-based REPL without the full-screen interface")
	configPath := fs.String("config", "", "configuration file (default .reed.yml if present)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *plain {
		return runPlainREPL(cfg)
	}
	return runREPL(cfg)
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintf(os.Stderr, "  %s run [-check] [-config file] <script> [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "    evaluate a script; remaining arguments are bound to args")
	fmt.Fprintf(os.Stderr, "  %s repl [-plain] [-config file]\n", prog)
	fmt.Fprintln(os.Stderr, "    interactive session; -plain for a line-based interface")
	fmt.Fprintf(os.Stderr, "  %s help\n", prog)
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
