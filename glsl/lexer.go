package glsl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LineState is the lexer state carried across a line boundary. It is what
// makes re-lexing restartable from any line: a scanner resumed with the
// state recorded at the end of the previous line produces the same tokens
// as a full pass over the whole source.
type LineState struct {
	// InComment is set when the line boundary falls inside a /* */ comment.
	InComment bool
	// InDirective is set when the previous line was a preprocessor
	// directive ending in a backslash continuation.
	InDirective bool
}

// Scanner produces tokens from GLSL source text one at a time.
type Scanner struct {
	input string

	offset int
	line   int
	column int

	state LineState

	// inDirective is set while scanning the remainder of a preprocessor
	// line. Unlike LineState.InDirective it resets at the next newline.
	inDirective bool

	// reportEOF controls whether an unterminated block comment at end of
	// input is a lexical error. Whole-source scans report it; per-line
	// scans carry it forward in LineState instead.
	reportEOF bool

	errs []*LexError
}

// NewScanner returns a scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{input: src, line: 1, column: 1, reportEOF: true}
}

// ResumeScanner returns a scanner positioned at a line boundary inside a
// larger source. offset must be the byte offset of the first character of
// line lineNo, and state the lexer state at the end of the preceding line.
func ResumeScanner(src string, offset, lineNo int, state LineState) *Scanner {
	return &Scanner{
		input:       src,
		offset:      offset,
		line:        lineNo,
		column:      1,
		state:       LineState{InComment: state.InComment},
		inDirective: state.InDirective,
		reportEOF:   true,
	}
}

// Tokenize scans all of src. Lexical errors never abort the pass: each is
// reported alongside an error token covering the offending input.
func Tokenize(src string) ([]Token, []*LexError) {
	s := NewScanner(src)
	// Estimate ~1 token per 6 characters of source.
	est := len(src) / 6
	if est < 16 {
		est = 16
	}
	tokens := make([]Token, 0, est)
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, s.Errs()
}

// ScanLine lexes a single line of text (without its trailing newline) and
// returns the tokens, the state at the line's end, and any lexical errors.
// startOffset and lineNo position the tokens within the enclosing document.
func ScanLine(text string, startOffset, lineNo int, state LineState) ([]Token, LineState, []*LexError) {
	s := &Scanner{
		input:       text,
		line:        lineNo,
		column:      1,
		state:       LineState{InComment: state.InComment},
		inDirective: state.InDirective,
	}
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		tok.Start += startOffset
		tok.End += startOffset
		tokens = append(tokens, tok)
	}
	return tokens, s.state, s.errs
}

// Errs returns the lexical errors encountered so far, in source order.
func (s *Scanner) Errs() []*LexError {
	return s.errs
}

// Next returns the next token. The second result is false once the input
// is exhausted.
func (s *Scanner) Next() (Token, bool) {
	if s.offset >= len(s.input) {
		return Token{}, false
	}
	if s.state.InComment {
		return s.commentTail(), true
	}

	start := s.offset
	pos := Position{Line: s.line, Column: s.column}
	r := s.peek()

	if r == '\n' {
		// A backslash continuation splices exactly the next line into the
		// directive. A blank continued line ends the directive here rather
		// than leaking it onto the line after.
		s.inDirective = s.state.InDirective
		s.state.InDirective = false
		s.advance()
		tok := s.token(TokenNewline, start, pos)
		s.line++
		s.column = 1
		return tok, true
	}

	if s.inDirective {
		return s.directiveChunk(), true
	}

	switch {
	case r == ' ' || r == '\t' || r == '\r':
		for {
			r = s.peek()
			if r != ' ' && r != '\t' && r != '\r' {
				break
			}
			s.advance()
		}
		return s.token(TokenWhitespace, start, pos), true
	case r == '#' && s.atLineStart(start):
		s.inDirective = true
		return s.directiveChunk(), true
	case r == '/' && s.peekAt(1) == '/':
		for s.offset < len(s.input) && s.peek() != '\n' {
			s.advance()
		}
		return s.token(TokenLineComment, start, pos), true
	case r == '/' && s.peekAt(1) == '*':
		s.advance()
		s.advance()
		return s.blockComment(start, pos), true
	case isDigit(r) || (r == '.' && isDigit(s.peekAt(1))):
		return s.number(start, pos), true
	case isIdentStart(r):
		for isIdentRune(s.peek()) {
			s.advance()
		}
		return s.token(TokenIdent, start, pos), true
	default:
		if kind, width := operatorAt(s.input[s.offset:]); width > 0 {
			for i := 0; i < width; i++ {
				s.advance()
			}
			return s.token(kind, start, pos), true
		}
		s.advance()
		s.errorf(pos, "unexpected character %q", s.input[start:s.offset])
		return s.token(TokenError, start, pos), true
	}
}

func (s *Scanner) token(kind TokenKind, start int, pos Position) Token {
	return Token{
		Kind:  kind,
		Text:  s.input[start:s.offset],
		Start: start,
		End:   s.offset,
		Pos:   pos,
	}
}

func (s *Scanner) errorf(pos Position, format string, args ...any) {
	s.errs = append(s.errs, &LexError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// atLineStart reports whether only whitespace precedes offset on its line.
// A '#' qualifies as a directive marker only in that position.
func (s *Scanner) atLineStart(offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		switch s.input[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// blockComment consumes a /* */ comment whose opener has been consumed.
// The comment may span lines; an unterminated comment at end of input is a
// lexical error on whole-source scans and carried LineState otherwise.
func (s *Scanner) blockComment(start int, pos Position) Token {
	for s.offset < len(s.input) {
		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.advance()
			s.advance()
			return s.token(TokenBlockComment, start, pos)
		}
		if s.peek() == '\n' {
			s.advance()
			s.line++
			s.column = 1
			continue
		}
		s.advance()
	}
	if s.reportEOF {
		s.errorf(pos, "unterminated block comment")
		return s.token(TokenError, start, pos)
	}
	s.state.InComment = true
	return s.token(TokenBlockComment, start, pos)
}

// commentTail resumes scanning inside a block comment that opened on an
// earlier line.
func (s *Scanner) commentTail() Token {
	start := s.offset
	pos := Position{Line: s.line, Column: s.column}
	for s.offset < len(s.input) {
		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.advance()
			s.advance()
			s.state.InComment = false
			return s.token(TokenBlockComment, start, pos)
		}
		if s.peek() == '\n' {
			s.advance()
			s.line++
			s.column = 1
			continue
		}
		s.advance()
	}
	if s.reportEOF {
		s.state.InComment = false
		s.errorf(pos, "unterminated block comment")
		return s.token(TokenError, start, pos)
	}
	return s.token(TokenBlockComment, start, pos)
}

// directiveChunk scans a preprocessor line. The line lexes as directive
// tokens except that "##" and "defined" are split out as sub-tokens and
// comments lex as comments. A backslash immediately before the newline
// continues the directive onto the next line via LineState.InDirective.
func (s *Scanner) directiveChunk() Token {
	start := s.offset
	pos := Position{Line: s.line, Column: s.column}
	chunk := func() Token {
		return s.token(TokenDirective, start, pos)
	}
	for s.offset < len(s.input) {
		r := s.peek()
		switch {
		case r == '\n':
			return chunk()
		case r == '\\' && (s.peekAt(1) == '\n' || s.offset+1 >= len(s.input)):
			s.advance()
			s.state.InDirective = true
			s.inDirective = false
			return chunk()
		case r == '\\' && s.peekAt(1) == '\r' && s.peekAt(2) == '\n':
			s.advance()
			s.advance()
			s.state.InDirective = true
			s.inDirective = false
			return chunk()
		case r == '#' && s.peekAt(1) == '#':
			if s.offset > start {
				return chunk()
			}
			s.advance()
			s.advance()
			return s.token(TokenOperator, start, pos) // token pasting
		case r == '/' && s.peekAt(1) == '/':
			if s.offset > start {
				return chunk()
			}
			s.inDirective = false
			for s.offset < len(s.input) && s.peek() != '\n' {
				s.advance()
			}
			return s.token(TokenLineComment, start, pos)
		case r == '/' && s.peekAt(1) == '*':
			if s.offset > start {
				return chunk()
			}
			s.advance()
			s.advance()
			tok := s.blockComment(start, pos)
			if s.state.InComment || tok.Kind == TokenError || strings.Contains(tok.Text, "\n") {
				// The directive does not survive past the line.
				s.inDirective = false
			}
			return tok
		case isIdentStart(r):
			if s.wordAt(s.offset, "defined") {
				if s.offset > start {
					return chunk()
				}
				for isIdentRune(s.peek()) {
					s.advance()
				}
				return s.token(TokenIdent, start, pos)
			}
			// Skip whole identifiers so "undefined" is never split around
			// an embedded "defined".
			for isIdentRune(s.peek()) {
				s.advance()
			}
		default:
			s.advance()
		}
	}
	return chunk()
}

// wordAt reports whether the identifier starting at offset is exactly word.
func (s *Scanner) wordAt(offset int, word string) bool {
	if !strings.HasPrefix(s.input[offset:], word) {
		return false
	}
	rest := s.input[offset+len(word):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !isIdentRune(r)
}

// number consumes a GLSL numeric literal: decimal, octal, or hex integers
// with an optional u/U suffix, and floats with optional exponent and
// f/F/lf/LF suffix. A malformed literal lexes as one error token.
func (s *Scanner) number(start int, pos Position) Token {
	bad := func(msg string) Token {
		for isIdentRune(s.peek()) || s.peek() == '.' {
			s.advance()
		}
		s.errorf(pos, "invalid numeric literal %q: %s", s.input[start:s.offset], msg)
		return s.token(TokenError, start, pos)
	}

	if s.peek() == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		s.advance()
		s.advance()
		if !isHexDigit(s.peek()) {
			return bad("hex literal needs at least one digit")
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		if s.peek() == 'u' || s.peek() == 'U' {
			s.advance()
		}
		if isIdentRune(s.peek()) {
			return bad("unexpected suffix")
		}
		return s.token(TokenNumber, start, pos)
	}

	isFloat := false
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' {
		isFloat = true
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		isFloat = true
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return bad("exponent needs at least one digit")
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	switch {
	case isFloat && (s.peek() == 'f' || s.peek() == 'F'):
		s.advance()
	case isFloat && (s.peek() == 'l' || s.peek() == 'L'):
		s.advance()
		if s.peek() != 'f' && s.peek() != 'F' {
			return bad("double suffix must be lf or LF")
		}
		s.advance()
	case !isFloat && (s.peek() == 'u' || s.peek() == 'U'):
		s.advance()
	}
	if isIdentRune(s.peek()) {
		return bad("unexpected suffix")
	}
	return s.token(TokenNumber, start, pos)
}

func (s *Scanner) peek() rune {
	return s.peekAt(0)
}

func (s *Scanner) peekAt(n int) rune {
	idx := s.offset
	for i := 0; ; i++ {
		if idx >= len(s.input) {
			return 0
		}
		r, w := utf8.DecodeRuneInString(s.input[idx:])
		if i == n {
			return r
		}
		idx += w
	}
}

func (s *Scanner) advance() rune {
	r, w := utf8.DecodeRuneInString(s.input[s.offset:])
	s.offset += w
	s.column++
	return r
}

// operators holds multi-character operators longest first so greedy
// matching picks "<<=" over "<<" over "<".
var operators = []string{
	"<<=", ">>=",
	"==", "!=", "<=", ">=", "&&", "||", "^^",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>", "++", "--",
	"+", "-", "*", "/", "%", "<", ">", "=", "!", "&", "|", "^", "~", "?", ":", ".",
}

func operatorAt(rest string) (TokenKind, int) {
	switch rest[0] {
	case '(', ')', '{', '}', '[', ']', ';', ',':
		return TokenPunct, 1
	}
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return TokenOperator, len(op)
		}
	}
	return "", 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isIdentStart matches the GLSL identifier grammar: letters and '_' only,
// no Unicode.
func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
