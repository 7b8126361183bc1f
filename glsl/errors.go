package glsl

import "fmt"

// LexError reports a lexical problem such as an unterminated block comment
// or a malformed numeric literal. Lexing continues past the error; the
// offending input is emitted as a single error token.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// ConfigError rejects a malformed vocabulary or indentation configuration.
// Constructors return it without mutating any existing state, so the
// caller's previous configuration stays in effect.
type ConfigError struct {
	Entry  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("config error: %s", e.Reason)
	}
	return fmt.Sprintf("config error: %q: %s", e.Entry, e.Reason)
}
