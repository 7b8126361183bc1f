package main

import (
	"fmt"
	"os"
	"path/filepath"
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
	case "fmt":
		return fmtCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "view":
		return viewCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return fmt.Errorf("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] [-indent N] [-tabs] <path>...")
	fmt.Fprintln(os.Stderr, "    reindent GLSL files; -w writes in place, -check reports only")
	fmt.Fprintln(os.Stderr, "  check <file>...")
	fmt.Fprintln(os.Stderr, "    lex files and report lexical errors")
	fmt.Fprintln(os.Stderr, "  tokens <file>")
	fmt.Fprintln(os.Stderr, "    dump the classified token stream of a file")
	fmt.Fprintln(os.Stderr, "  view [-indent N] <file>")
	fmt.Fprintln(os.Stderr, "    open a file in the interactive highlighted viewer")
}

// flagErrorSink suppresses the flag package's own error printing; errors
// surface through the returned error instead.
type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
