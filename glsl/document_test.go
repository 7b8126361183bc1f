package glsl

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocumentRoundTrip(t *testing.T) {
	src := "void main() {\n    gl_Position = vec4(0.0);\n}\n"
	doc := NewDocument(src)
	if doc.Text() != src {
		t.Fatalf("Text() = %q, want %q", doc.Text(), src)
	}
	if doc.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", doc.LineCount())
	}
	if doc.Line(2) != "}" {
		t.Fatalf("Line(2) = %q", doc.Line(2))
	}
}

func TestDocumentLineTokensOffsets(t *testing.T) {
	src := "int a;\nint b;"
	doc := NewDocument(src)
	tokens := doc.LineTokens(1)
	if len(tokens) == 0 {
		t.Fatalf("no tokens on line 1")
	}
	first := tokens[0]
	if first.Text != "int" || first.Start != 7 {
		t.Fatalf("unexpected first token on line 1: %+v", first)
	}
	if first.Pos.Line != 2 {
		t.Fatalf("token line = %d, want 2", first.Pos.Line)
	}
}

func TestDocumentCommentStateAcrossLines(t *testing.T) {
	doc := NewDocument("/* open\nstill inside\n*/ int x;")
	if doc.LineState(0).InComment {
		t.Fatalf("line 0 should not start inside a comment")
	}
	if !doc.LineState(1).InComment || !doc.LineState(2).InComment {
		t.Fatalf("lines 1 and 2 should start inside the comment")
	}

	// Closing the comment earlier re-derives the state below the edit.
	doc.SetLine(0, "/* open */")
	if doc.LineState(1).InComment {
		t.Fatalf("line 1 should leave the comment after the edit")
	}
	tokens := doc.LineTokens(1)
	if len(tokens) == 0 || tokens[0].Kind != TokenIdent {
		t.Fatalf("line 1 should re-lex as code, got %v", tokens)
	}
}

func TestDocumentInsertRemove(t *testing.T) {
	doc := NewDocument("a;\nc;")
	doc.InsertLine(1, "b;")
	want := "a;\nb;\nc;"
	if doc.Text() != want {
		t.Fatalf("after insert: %q, want %q", doc.Text(), want)
	}
	doc.RemoveLine(0)
	if doc.Text() != "b;\nc;" {
		t.Fatalf("after remove: %q", doc.Text())
	}
	if got := doc.LineTokens(0)[0]; got.Start != 0 || got.Text != "b" {
		t.Fatalf("offsets not re-derived after remove: %+v", got)
	}

	doc.RemoveLine(0)
	doc.RemoveLine(0)
	if doc.LineCount() != 1 || doc.Line(0) != "" {
		t.Fatalf("document should keep one empty line, got %d lines", doc.LineCount())
	}
}

func TestDocumentTokensMatchFullTokenize(t *testing.T) {
	src := "#version 330\nvoid main() {\n    /* c1\n    c2 */\n    float x = 1.0;\n}"
	doc := NewDocument(src)

	var fromDoc []Token
	for i := 0; i < doc.LineCount(); i++ {
		for _, tok := range doc.LineTokens(i) {
			if tok.isBlank() {
				continue
			}
			fromDoc = append(fromDoc, tok)
		}
	}

	full, _ := Tokenize(src)
	var fromFull []Token
	for _, tok := range full {
		if tok.isBlank() {
			continue
		}
		fromFull = append(fromFull, tok)
	}

	if diff := cmp.Diff(fromFull, fromDoc); diff != "" {
		t.Fatalf("document tokens disagree with full pass (-full +doc):\n%s", diff)
	}
}

func TestDocumentLexErrors(t *testing.T) {
	doc := NewDocument("float x = 0x;\nint y; /* open\nnever closed")
	errs := doc.LexErrors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 lex errors, got %v", errs)
	}
	if errs[0].Pos.Line != 1 || !strings.Contains(errs[0].Msg, "numeric") {
		t.Fatalf("unexpected first error: %v", errs[0])
	}
	if errs[1].Pos.Line != 2 || !strings.Contains(errs[1].Msg, "unterminated") {
		t.Fatalf("unterminated comment should point at its opener: %v", errs[1])
	}
}

func TestDocumentDirectiveContinuation(t *testing.T) {
	doc := NewDocument("#define SUM(a, b) \\\n    ((a) + (b))\nint x;")
	if !doc.LineState(1).InDirective {
		t.Fatalf("line 1 should continue the directive")
	}
	if doc.LineState(2).InDirective {
		t.Fatalf("line 2 should not continue the directive")
	}
	tokens := doc.LineTokens(1)
	if len(tokens) == 0 || tokens[0].Kind != TokenDirective {
		t.Fatalf("continuation line should lex as directive, got %v", tokens)
	}
}

func TestDocumentDirectiveBlankContinuation(t *testing.T) {
	doc := NewDocument("#define X \\\n\nint y;")
	if !doc.LineState(1).InDirective {
		t.Fatalf("blank line 1 should continue the directive")
	}
	if doc.LineState(2).InDirective {
		t.Fatalf("directive must end at the blank continued line")
	}
	tokens := doc.LineTokens(2)
	if len(tokens) == 0 || tokens[0].Kind != TokenIdent || tokens[0].Text != "int" {
		t.Fatalf("line 2 should lex as code, got %v", tokens)
	}
}
