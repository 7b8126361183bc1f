package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/glsltools/glslx/glsl"
)

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	extraTypes := fs.String("types", "", "comma-separated extra type names")
	extraBuiltins := fs.String("builtins", "", "comma-separated extra builtin names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		return errors.New("glslx tokens: exactly one file required")
	}

	classifier, err := glsl.NewClassifier(glsl.VocabularyConfig{
		ExtraTypes:    splitNames(*extraTypes),
		ExtraBuiltins: splitNames(*extraBuiltins),
	})
	if err != nil {
		return err
	}

	input, err := os.ReadFile(remaining[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", remaining[0], err)
	}

	tokens, errs := glsl.Tokenize(string(input))
	for _, tok := range tokens {
		if tok.Kind == glsl.TokenWhitespace || tok.Kind == glsl.TokenNewline {
			continue
		}
		line := fmt.Sprintf("%4d:%-3d %-13s %q", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Text)
		if cat := classifier.ClassifyToken(tok); cat != glsl.CategoryPlain {
			line += fmt.Sprintf("  (%s)", cat)
		}
		fmt.Println(line)
	}
	for _, lexErr := range errs {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", remaining[0], lexErr.Pos.Line, lexErr.Pos.Column, lexErr.Msg)
	}
	if len(errs) > 0 {
		return fmt.Errorf("tokens found %d lexical issue(s)", len(errs))
	}
	return nil
}

func splitNames(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
