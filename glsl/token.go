package glsl

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	TokenIdent        TokenKind = "IDENT"
	TokenNumber       TokenKind = "NUMBER"
	TokenOperator     TokenKind = "OPERATOR"
	TokenPunct        TokenKind = "PUNCT"
	TokenLineComment  TokenKind = "LINE_COMMENT"
	TokenBlockComment TokenKind = "BLOCK_COMMENT"
	TokenDirective    TokenKind = "DIRECTIVE"
	TokenWhitespace   TokenKind = "WHITESPACE"
	TokenNewline      TokenKind = "NEWLINE"
	TokenError        TokenKind = "ERROR"
)

// Token is an immutable slice of source text. Start and End are byte
// offsets into the input; offsets across a token stream are monotonic and
// never overlap.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
	Pos   Position
}

// Position identifies a point in the source, 1-based.
type Position struct {
	Line   int
	Column int
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == TokenLineComment || t.Kind == TokenBlockComment
}

// isBlank reports whether the token carries no structure: whitespace,
// newlines, and comments are all invisible to the indentation engine.
func (t Token) isBlank() bool {
	return t.Kind == TokenWhitespace || t.Kind == TokenNewline || t.IsComment()
}
