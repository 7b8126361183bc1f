package glsl

import "strings"

// Document is an ordered sequence of source lines with per-line lexer
// state, so that any line can be re-lexed without scanning the whole file.
// Line indices are 0-based. A Document is owned by a single caller; it is
// not safe for concurrent mutation.
type Document struct {
	lines []documentLine
}

type documentLine struct {
	text   string
	offset int       // byte offset of the line start within Text()
	state  LineState // lexer state at the line start

	tokens   []Token // derived, rebuilt on demand
	tokensOK bool
}

// NewDocument splits text into lines and derives the per-line lexer state.
// Line separators are '\n'; a trailing '\r' on a line is kept as text.
func NewDocument(text string) *Document {
	raw := strings.Split(text, "\n")
	d := &Document{lines: make([]documentLine, len(raw))}
	for i, line := range raw {
		d.lines[i].text = line
	}
	d.reindex(0)
	return d
}

// LineCount returns the number of lines. An empty document has one empty
// line, mirroring strings.Split.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the raw text of line i, without its newline.
func (d *Document) Line(i int) string {
	return d.lines[i].text
}

// SetLine replaces the text of line i and re-derives lexer state from the
// changed line down.
func (d *Document) SetLine(i int, text string) {
	d.lines[i].text = text
	d.reindex(i)
}

// InsertLine inserts text as a new line i, shifting later lines down.
func (d *Document) InsertLine(i int, text string) {
	d.lines = append(d.lines, documentLine{})
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = documentLine{text: text}
	d.reindex(i)
}

// RemoveLine deletes line i. The last remaining line is cleared rather
// than removed so the document never becomes lineless.
func (d *Document) RemoveLine(i int) {
	if len(d.lines) == 1 {
		d.lines[0] = documentLine{}
		d.reindex(0)
		return
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	if i >= len(d.lines) {
		i = len(d.lines) - 1
	}
	d.reindex(i)
}

// LineTokens returns the token slice of line i, lexed under the line's
// carried state. The slice is cached until a mutation invalidates it.
func (d *Document) LineTokens(i int) []Token {
	ln := &d.lines[i]
	if !ln.tokensOK {
		tokens, _, _ := ScanLine(ln.text, ln.offset, i+1, ln.state)
		ln.tokens = tokens
		ln.tokensOK = true
	}
	return ln.tokens
}

// LineState returns the lexer state at the start of line i.
func (d *Document) LineState(i int) LineState {
	return d.lines[i].state
}

// Text reassembles the document as a single string.
func (d *Document) Text() string {
	parts := make([]string, len(d.lines))
	for i := range d.lines {
		parts[i] = d.lines[i].text
	}
	return strings.Join(parts, "\n")
}

// LexErrors lexes every line and reports all lexical errors, including an
// unterminated block comment left open at end of input.
func (d *Document) LexErrors() []*LexError {
	var errs []*LexError
	state := LineState{}
	openLine := -1
	for i := range d.lines {
		tokens, next, lineErrs := ScanLine(d.lines[i].text, d.lines[i].offset, i+1, state)
		errs = append(errs, lineErrs...)
		if !state.InComment && next.InComment {
			openLine = i
			for _, tok := range tokens {
				if tok.Kind == TokenBlockComment {
					openLine = tok.Pos.Line - 1
				}
			}
		}
		state = next
	}
	if state.InComment {
		col := 1
		for _, tok := range d.LineTokens(openLine) {
			if tok.Kind == TokenBlockComment {
				col = tok.Pos.Column
			}
		}
		errs = append(errs, &LexError{
			Pos: Position{Line: openLine + 1, Column: col},
			Msg: "unterminated block comment",
		})
	}
	return errs
}

// reindex re-derives offsets and lexer state from line i to the end,
// stopping early once the carried state matches what was already stored.
func (d *Document) reindex(i int) {
	offset := 0
	state := LineState{}
	if i > 0 {
		prev := &d.lines[i-1]
		offset = prev.offset + len(prev.text) + 1
		_, state, _ = ScanLine(prev.text, prev.offset, i, prev.state)
	}
	for first := true; i < len(d.lines); i, first = i+1, false {
		ln := &d.lines[i]
		if !first && ln.offset == offset && ln.state == state && ln.tokensOK {
			// Later lines are untouched and lex identically.
			return
		}
		ln.offset = offset
		ln.state = state
		ln.tokens = nil
		ln.tokensOK = false
		_, state, _ = ScanLine(ln.text, ln.offset, i+1, ln.state)
		offset += len(ln.text) + 1
	}
}
