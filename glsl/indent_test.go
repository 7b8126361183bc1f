package glsl

import "testing"

func TestIndentForBasicBlock(t *testing.T) {
	doc := NewDocument("void main() {\ngl_FragColor = vec4(1.0);\n}")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 0, cfg); got != 0 {
		t.Fatalf("line 0 indent = %d, want 0", got)
	}
	if got := IndentFor(doc, 1, cfg); got != 4 {
		t.Fatalf("line 1 indent = %d, want 4", got)
	}
	if got := IndentFor(doc, 2, cfg); got != 0 {
		t.Fatalf("line 2 indent = %d, want 0", got)
	}
}

func TestIndentForNestedBlocks(t *testing.T) {
	doc := NewDocument("void main() {\n    if (x > 0.0) {\ny = 1.0;\n}\n}")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 2, cfg); got != 8 {
		t.Fatalf("nested body indent = %d, want 8", got)
	}
	if got := IndentFor(doc, 3, cfg); got != 4 {
		t.Fatalf("inner closer indent = %d, want 4", got)
	}
	if got := IndentFor(doc, 4, cfg); got != 0 {
		t.Fatalf("outer closer indent = %d, want 0", got)
	}
}

func TestIndentForCaseLabels(t *testing.T) {
	doc := NewDocument("switch (mode) {\ncase 1:\ndoWork();\ndefault:\nbreak;\n}")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 1, cfg); got != 0 {
		t.Fatalf("case indent = %d, want 0", got)
	}
	if got := IndentFor(doc, 2, cfg); got != 4 {
		t.Fatalf("case body indent = %d, want 4", got)
	}
	if got := IndentFor(doc, 3, cfg); got != 0 {
		t.Fatalf("default indent = %d, want 0", got)
	}
}

func TestIndentForContinuationLine(t *testing.T) {
	doc := NewDocument("float v = a +\nb;\nfloat w;")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 1, cfg); got != 4 {
		t.Fatalf("continuation indent = %d, want 4", got)
	}
	// The statement terminated on the line above, so no continuation.
	if got := IndentFor(doc, 2, cfg); got != 0 {
		t.Fatalf("fresh statement indent = %d, want 0", got)
	}
}

func TestIndentForContinuationInsideBlock(t *testing.T) {
	doc := NewDocument("void f() {\n    float v = a +\nb;\n}")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 2, cfg); got != 8 {
		t.Fatalf("continuation inside block = %d, want 8", got)
	}
}

func TestIndentForPreprocessorAtColumnZero(t *testing.T) {
	doc := NewDocument("void main() {\n    #ifdef DEBUG\n    x = 1.0;\n#endif\n}")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 1, cfg); got != 0 {
		t.Fatalf("directive indent = %d, want 0", got)
	}
	if got := IndentFor(doc, 3, cfg); got != 0 {
		t.Fatalf("#endif indent = %d, want 0", got)
	}
	// Code around directives still follows brace depth.
	if got := IndentFor(doc, 2, cfg); got != 4 {
		t.Fatalf("code indent = %d, want 4", got)
	}
}

func TestIndentForDirectiveContinuation(t *testing.T) {
	doc := NewDocument("#define SUM(a, b) \\\n((a) + (b))\nint x;")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 1, cfg); got != 0 {
		t.Fatalf("directive continuation indent = %d, want 0", got)
	}
	if got := IndentFor(doc, 2, cfg); got != 0 {
		t.Fatalf("code after macro definition = %d, want 0", got)
	}
}

func TestIndentForAfterConditionalDirective(t *testing.T) {
	// The "defined" and "##" sub-tokens of a directive line are not
	// statement content; code below must not pick up a continuation unit.
	doc := NewDocument("#if defined(FOO)\nint x;\n#endif")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 1, cfg); got != 0 {
		t.Fatalf("code after #if defined = %d, want 0", got)
	}

	doc = NewDocument("void f() {\n#if defined(FOO) && !defined(BAR)\n    x = 1.0;\n#endif\n}")
	if got := IndentFor(doc, 2, cfg); got != 4 {
		t.Fatalf("code inside braces after #if defined = %d, want 4", got)
	}

	doc = NewDocument("#define GLUE(a, b) a ## b\nfloat y;")
	if got := IndentFor(doc, 1, cfg); got != 0 {
		t.Fatalf("code after token-pasting macro = %d, want 0", got)
	}
}

func TestIndentForBlockCommentInterior(t *testing.T) {
	doc := NewDocument("void f() {\n    /* explain\n* aligned\nplain text\n*/\n}")
	cfg := IndentConfig{Width: 4}
	// Continuation lines starting with '*' sit one column past the opener.
	if got := IndentFor(doc, 2, cfg); got != 5 {
		t.Fatalf("asterisk line indent = %d, want 5", got)
	}
	// Other interior lines keep the opener's indentation.
	if got := IndentFor(doc, 3, cfg); got != 4 {
		t.Fatalf("plain interior indent = %d, want 4", got)
	}
	if got := IndentFor(doc, 4, cfg); got != 5 {
		t.Fatalf("closing line indent = %d, want 5", got)
	}
}

func TestIndentForUnbalancedClosers(t *testing.T) {
	doc := NewDocument("} } }\nint x;")
	cfg := IndentConfig{Width: 4}
	if got := IndentFor(doc, 0, cfg); got != 0 {
		t.Fatalf("unbalanced closer line indent = %d, want 0", got)
	}
	// Depth floors at zero: the next line is not pushed negative.
	if got := IndentFor(doc, 1, cfg); got != 0 {
		t.Fatalf("line after unbalanced closers = %d, want 0", got)
	}
}

func TestIndentForEmptyDocument(t *testing.T) {
	doc := NewDocument("")
	if got := IndentFor(doc, 0, IndentConfig{}); got != 0 {
		t.Fatalf("empty document indent = %d, want 0", got)
	}
}

func TestIndentForParenAlignment(t *testing.T) {
	doc := NewDocument("vec4 c = mix(\na,\nb,\n0.5);")
	cfg := IndentConfig{Width: 4}
	// Lines inside parens indent one unit from the opener's line and do
	// not accumulate continuation units.
	for i := 1; i <= 2; i++ {
		if got := IndentFor(doc, i, cfg); got != 4 {
			t.Fatalf("paren arg line %d indent = %d, want 4", i, got)
		}
	}
}

func TestIndentForDefaultWidth(t *testing.T) {
	doc := NewDocument("void main() {\nx();\n}")
	if got := IndentFor(doc, 1, IndentConfig{}); got != 4 {
		t.Fatalf("default width indent = %d, want 4", got)
	}
}

func TestIndentConfigValidate(t *testing.T) {
	if err := (IndentConfig{Width: -1}).Validate(); err == nil {
		t.Fatalf("negative width should be rejected")
	}
	if err := (IndentConfig{Width: 2, UseTabs: true}).Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}
