package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glsltools/glslx/glsl"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	errorColor  = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")
	keyColor    = lipgloss.Color("#F59E0B")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(keyColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

// categoryStyles is the rendering collaborator for the classifier: each
// symbol category maps to a terminal style.
var categoryStyles = map[glsl.SymbolCategory]lipgloss.Style{
	glsl.CategoryType:                lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	glsl.CategoryQualifier:           lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
	glsl.CategoryKeyword:             lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true),
	glsl.CategoryReserved:            lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	glsl.CategoryBuiltin:             lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
	glsl.CategoryDeprecatedBuiltin:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Strikethrough(true),
	glsl.CategoryDeprecatedQualifier: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Strikethrough(true),
	glsl.CategoryDeprecatedVariable:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Strikethrough(true),
	glsl.CategoryDirective:           lipgloss.NewStyle().Foreground(lipgloss.Color("#EC4899")),
	glsl.CategoryPreprocessorBuiltin: lipgloss.NewStyle().Foreground(lipgloss.Color("#EC4899")).Bold(true),
}

// kindStyles colors non-identifier tokens.
var kindStyles = map[glsl.TokenKind]lipgloss.Style{
	glsl.TokenNumber:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
	glsl.TokenLineComment:  lipgloss.NewStyle().Foreground(mutedColor).Italic(true),
	glsl.TokenBlockComment: lipgloss.NewStyle().Foreground(mutedColor).Italic(true),
	glsl.TokenError:        lipgloss.NewStyle().Foreground(errorColor).Underline(true),
}

type viewKeyMap struct {
	Quit     key.Binding
	Reindent key.Binding
	Switch   key.Binding
	Help     key.Binding
}

var viewKeys = viewKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Reindent: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reindent buffer"),
	),
	Switch: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch to companion shader"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

type viewModel struct {
	path       string
	doc        *glsl.Document
	classifier *glsl.Classifier
	cfg        glsl.IndentConfig

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string
	isErr    bool
	quitting bool
}

func viewCommand(args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	width := fs.Int("indent", 4, "columns per indentation unit")
	tabs := fs.Bool("tabs", false, "indent with tabs instead of spaces")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		return errors.New("glslx view: exactly one file required")
	}

	cfg := glsl.IndentConfig{Width: *width, UseTabs: *tabs}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := newViewModel(remaining[0], cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newViewModel(path string, cfg glsl.IndentConfig) (viewModel, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return viewModel{}, fmt.Errorf("resolve path: %w", err)
	}
	input, err := os.ReadFile(abs)
	if err != nil {
		return viewModel{}, fmt.Errorf("read %s: %w", abs, err)
	}
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	return viewModel{
		path:       abs,
		doc:        glsl.NewDocument(text),
		classifier: glsl.MustNewClassifier(glsl.VocabularyConfig{}),
		cfg:        cfg,
	}, nil
}

func (m viewModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(renderDocument(m.doc, m.classifier))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, viewKeys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, viewKeys.Reindent):
			if glsl.Reindent(m.doc, m.cfg) {
				m.status = "reindented"
			} else {
				m.status = "already indented"
			}
			m.isErr = false
			m.viewport.SetContent(renderDocument(m.doc, m.classifier))
			return m, nil

		case key.Matches(msg, viewKeys.Switch):
			companion, ok := companionPath(m.path)
			if !ok {
				m.status = "no companion shader found"
				m.isErr = true
				return m, nil
			}
			next, err := newViewModel(companion, m.cfg)
			if err != nil {
				m.status = err.Error()
				m.isErr = true
				return m, nil
			}
			next.width = m.width
			next.height = m.height
			next.ready = m.ready
			next.viewport = m.viewport
			next.viewport.GotoTop()
			next.viewport.SetContent(renderDocument(next.doc, next.classifier))
			next.status = "switched to " + filepath.Base(companion)
			return next, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	header := headerStyle.Render(filepath.Base(m.path))
	count := mutedStyle.Render(fmt.Sprintf("%d lines", m.doc.LineCount()))
	b.WriteString(header + " " + count + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 72))) + "\n")

	b.WriteString(m.viewport.View() + "\n")

	if m.showHelp {
		b.WriteString(renderViewHelp() + "\n")
	}

	footer := helpKeyStyle.Render("r") + helpDescStyle.Render(" reindent  ") +
		helpKeyStyle.Render("tab") + helpDescStyle.Render(" companion  ") +
		helpKeyStyle.Render("?") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("q") + helpDescStyle.Render(" quit")
	if m.status != "" {
		sep := helpDescStyle.Render("  │ ")
		if m.isErr {
			footer += sep + statusErrStyle.Render(m.status)
		} else {
			footer += sep + mutedStyle.Render(m.status)
		}
	}
	b.WriteString(footer)

	return b.String()
}

func renderViewHelp() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Scroll"},
		{"pgup/pgdn", "Scroll by page"},
		{"r", "Reindent the buffer"},
		{"tab", "Switch vert/frag companion"},
		{"q", "Quit"},
	}
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-10s", h.key)),
			helpDescStyle.Render(h.desc)))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

// renderDocument highlights every line of doc for terminal display.
func renderDocument(doc *glsl.Document, classifier *glsl.Classifier) string {
	var b strings.Builder
	for i := 0; i < doc.LineCount(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(highlightLine(doc, i, classifier))
	}
	return b.String()
}

// highlightLine renders one line, styling each token by its category. The
// core only supplies categories; the style mapping lives here.
func highlightLine(doc *glsl.Document, i int, classifier *glsl.Classifier) string {
	var b strings.Builder
	for _, tok := range doc.LineTokens(i) {
		if style, ok := kindStyles[tok.Kind]; ok {
			b.WriteString(style.Render(tok.Text))
			continue
		}
		cat := classifier.ClassifyToken(tok)
		if style, ok := categoryStyles[cat]; ok {
			b.WriteString(style.Render(tok.Text))
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// companions pairs shader stages that commonly travel together.
var companions = map[string][]string{
	".vert": {".frag"},
	".frag": {".vert"},
	".tesc": {".tese"},
	".tese": {".tesc"},
}

// companionPath resolves the counterpart shader of path, e.g. foo.vert to
// foo.frag, returning the first candidate that exists on disk.
func companionPath(path string) (string, bool) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for _, other := range companions[ext] {
		candidate := stem + other
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
