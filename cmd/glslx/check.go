package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/glsltools/glslx/glsl"
)

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("glslx check: file required")
	}

	total := 0
	for _, path := range paths {
		input, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		_, errs := glsl.Tokenize(string(input))
		for _, lexErr := range errs {
			fmt.Printf("%s:%d:%d: %s\n", path, lexErr.Pos.Line, lexErr.Pos.Column, lexErr.Msg)
		}
		total += len(errs)
	}

	if total > 0 {
		return fmt.Errorf("check found %d issue(s)", total)
	}
	fmt.Println("No issues found")
	return nil
}
