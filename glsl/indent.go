package glsl

import "strings"

// IndentConfig controls indentation rendering.
type IndentConfig struct {
	// Width is the number of columns per indentation unit. Zero means the
	// default of 4.
	Width int
	// UseTabs renders each full unit as a tab instead of spaces.
	UseTabs bool
}

// Validate rejects a malformed indentation configuration.
func (c IndentConfig) Validate() error {
	if c.Width < 0 {
		return &ConfigError{Reason: "indent width must not be negative"}
	}
	return nil
}

func (c IndentConfig) normalize() IndentConfig {
	if c.Width <= 0 {
		c.Width = 4
	}
	return c
}

// opener records an unmatched opening bracket seen while walking the lines
// above the target.
type opener struct {
	char string
	line int // 0-based line the bracket appears on
}

// IndentFor computes the indentation column for line i of doc. It never
// fails: unbalanced closers are ignored rather than underflowing the
// nesting stack, and malformed input degrades to a best-effort depth.
func IndentFor(doc *Document, i int, cfg IndentConfig) int {
	cfg = cfg.normalize()
	if doc.LineCount() == 0 {
		return 0
	}

	// Inside a block comment there is no structure to analyze: keep the
	// opening line's indentation, nudged one column for " *" continuation
	// lines so the asterisks align under the opener's '*'.
	if doc.LineState(i).InComment {
		open := i - 1
		for open > 0 && doc.LineState(open).InComment {
			open--
		}
		indent := measureIndent(doc.Line(open), cfg)
		if strings.HasPrefix(strings.TrimLeft(doc.Line(i), " \t"), "*") {
			indent++
		}
		return indent
	}

	// Preprocessor lines ignore block structure entirely.
	trimmed := strings.TrimLeft(doc.Line(i), " \t")
	if strings.HasPrefix(trimmed, "#") || doc.LineState(i).InDirective {
		return 0
	}

	stack, prev := scanAbove(doc, i)

	first, hasFirst := firstSignificant(doc, i)

	// A line that begins with a closing bracket aligns with the line of
	// the bracket it closes.
	if hasFirst && isCloser(first.Text) {
		if len(stack) == 0 {
			return 0
		}
		return measureIndent(doc.Line(stack[len(stack)-1].line), cfg)
	}

	indent := 0
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		indent = measureIndent(doc.Line(top.line), cfg) + cfg.Width
	}

	// case/default labels sit one unit shallower than the switch body.
	if hasFirst && first.Kind == TokenIdent && (first.Text == "case" || first.Text == "default") {
		indent -= cfg.Width
	}

	// A statement left open on the previous line gets one continuation
	// unit. Lines inside parens or brackets are argument lists rather
	// than statements, so only brace-level code continues.
	if prev.ok && !prev.endsStatement && topIsBraceOrEmpty(stack) {
		indent += cfg.Width
	}

	if indent < 0 {
		indent = 0
	}
	return indent
}

// prevLineInfo captures what the indentation rules need to know about the
// nearest significant line above the target.
type prevLineInfo struct {
	ok            bool
	endsStatement bool
}

// scanAbove walks tokens of lines 0..i-1 building the unmatched-opener
// stack and noting how the last significant line ended. Comments,
// whitespace, error tokens, and whole preprocessor lines carry no
// structure; the latter matters because directive lines emit ident and
// operator sub-tokens for "defined" and "##".
func scanAbove(doc *Document, i int) ([]opener, prevLineInfo) {
	var stack []opener
	prev := prevLineInfo{}
	for ln := 0; ln < i; ln++ {
		if isDirectiveLine(doc, ln) {
			continue
		}
		for _, tok := range doc.LineTokens(ln) {
			switch {
			case tok.isBlank(), tok.Kind == TokenDirective, tok.Kind == TokenError:
				continue
			case tok.Kind == TokenPunct && isOpener(tok.Text):
				stack = append(stack, opener{char: tok.Text, line: ln})
			case tok.Kind == TokenPunct && isCloser(tok.Text):
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
			prev.ok = true
			prev.endsStatement = tok.Text == ";" || tok.Text == "{" || tok.Text == "}" ||
				tok.Text == ":" || isOpener(tok.Text)
		}
	}
	return stack, prev
}

// isDirectiveLine reports whether line ln is preprocessor content: it
// either begins a directive or continues one via backslash splicing.
func isDirectiveLine(doc *Document, ln int) bool {
	if doc.LineState(ln).InDirective {
		return true
	}
	for _, tok := range doc.LineTokens(ln) {
		if tok.isBlank() {
			continue
		}
		return tok.Kind == TokenDirective
	}
	return false
}

func firstSignificant(doc *Document, i int) (Token, bool) {
	for _, tok := range doc.LineTokens(i) {
		if tok.isBlank() || tok.Kind == TokenDirective || tok.Kind == TokenError {
			continue
		}
		return tok, true
	}
	return Token{}, false
}

func topIsBraceOrEmpty(stack []opener) bool {
	return len(stack) == 0 || stack[len(stack)-1].char == "{"
}

func isOpener(s string) bool {
	return s == "(" || s == "[" || s == "{"
}

func isCloser(s string) bool {
	return s == ")" || s == "]" || s == "}"
}

// measureIndent counts the leading whitespace of text in columns, with a
// tab worth one indentation unit.
func measureIndent(text string, cfg IndentConfig) int {
	cols := 0
	for _, r := range text {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += cfg.Width
		default:
			return cols
		}
	}
	return cols
}

// indentString renders cols columns of leading whitespace per cfg.
func indentString(cols int, cfg IndentConfig) string {
	if !cfg.UseTabs {
		return strings.Repeat(" ", cols)
	}
	return strings.Repeat("\t", cols/cfg.Width) + strings.Repeat(" ", cols%cfg.Width)
}
