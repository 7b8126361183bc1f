package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glsltools/glslx/glsl"
)

func fmtIndentConfig() glsl.IndentConfig {
	return glsl.IndentConfig{Width: 4}
}

func TestCompanionPathPairsVertAndFrag(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "shader.vert")
	frag := filepath.Join(dir, "shader.frag")
	for _, p := range []string{vert, frag} {
		if err := os.WriteFile(p, []byte("void main() {}\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	got, ok := companionPath(vert)
	if !ok || got != frag {
		t.Fatalf("companionPath(%q) = %q, %v", vert, got, ok)
	}
	got, ok = companionPath(frag)
	if !ok || got != vert {
		t.Fatalf("companionPath(%q) = %q, %v", frag, got, ok)
	}
}

func TestCompanionPathMissingCounterpart(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "lonely.vert")
	if err := os.WriteFile(vert, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := companionPath(vert); ok {
		t.Fatalf("expected no companion for lonely.vert")
	}
}

func TestCompanionPathUnknownExtension(t *testing.T) {
	if _, ok := companionPath("/tmp/whatever.comp"); ok {
		t.Fatalf("compute shaders have no companion")
	}
}

func TestNewViewModelReadsFile(t *testing.T) {
	path := writeShaderFile(t, "m.frag", "void main() {\n    gl_FragColor = vec4(1.0);\n}\n")
	m, err := newViewModel(path, fmtIndentConfig())
	if err != nil {
		t.Fatalf("newViewModel failed: %v", err)
	}
	if m.doc.LineCount() != 4 {
		t.Fatalf("unexpected line count %d", m.doc.LineCount())
	}
}

func TestViewModelQuitKey(t *testing.T) {
	path := writeShaderFile(t, "m.frag", "void main() {}\n")
	m, err := newViewModel(path, fmtIndentConfig())
	if err != nil {
		t.Fatalf("newViewModel failed: %v", err)
	}

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	vm, ok := model.(viewModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if !vm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestViewModelReindentKey(t *testing.T) {
	path := writeShaderFile(t, "m.frag", "void main() {\nx();\n}\n")
	m, err := newViewModel(path, fmtIndentConfig())
	if err != nil {
		t.Fatalf("newViewModel failed: %v", err)
	}
	// Size the viewport before sending keys, as the program would.
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(viewModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	vm := model.(viewModel)
	if vm.status != "reindented" {
		t.Fatalf("unexpected status %q", vm.status)
	}
	if vm.doc.Line(1) != "    x();" {
		t.Fatalf("buffer not reindented: %q", vm.doc.Line(1))
	}

	// A second press finds nothing to do.
	model, _ = vm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	vm = model.(viewModel)
	if vm.status != "already indented" {
		t.Fatalf("unexpected status %q", vm.status)
	}
}

func TestViewModelSwitchWithoutCompanion(t *testing.T) {
	path := writeShaderFile(t, "solo.frag", "void main() {}\n")
	m, err := newViewModel(path, fmtIndentConfig())
	if err != nil {
		t.Fatalf("newViewModel failed: %v", err)
	}
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	vm := model.(viewModel)
	if !vm.isErr || !strings.Contains(vm.status, "no companion") {
		t.Fatalf("expected companion error status, got %q", vm.status)
	}
}

func TestHighlightLineKeepsText(t *testing.T) {
	path := writeShaderFile(t, "m.frag", "uniform vec3 color; // tint\n")
	m, err := newViewModel(path, fmtIndentConfig())
	if err != nil {
		t.Fatalf("newViewModel failed: %v", err)
	}
	rendered := highlightLine(m.doc, 0, m.classifier)
	for _, want := range []string{"uniform", "vec3", "color", "// tint"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered line lost %q: %q", want, rendered)
		}
	}
}
