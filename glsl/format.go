package glsl

import "strings"

// ReindentLine recomputes the indentation of line i and rewrites its
// leading whitespace. Blank lines are emptied rather than padded. It
// reports whether the line changed.
func ReindentLine(doc *Document, i int, cfg IndentConfig) bool {
	cfg = cfg.normalize()
	old := doc.Line(i)
	body := strings.TrimLeft(old, " \t")
	var next string
	if body == "" {
		next = ""
	} else {
		next = indentString(IndentFor(doc, i, cfg), cfg) + body
	}
	if next == old {
		return false
	}
	doc.SetLine(i, next)
	return true
}

// ReindentRegion applies ReindentLine to every line in the closed range
// [start, end], top to bottom, so each line's computation sees the lines
// above it already reindented. Running it again with no intervening edits
// changes nothing. Out-of-range bounds are clamped. It reports whether any
// line changed.
func ReindentRegion(doc *Document, start, end int, cfg IndentConfig) bool {
	if start < 0 {
		start = 0
	}
	if end >= doc.LineCount() {
		end = doc.LineCount() - 1
	}
	changed := false
	for i := start; i <= end; i++ {
		if ReindentLine(doc, i, cfg) {
			changed = true
		}
	}
	return changed
}

// Reindent reindents the whole document.
func Reindent(doc *Document, cfg IndentConfig) bool {
	return ReindentRegion(doc, 0, doc.LineCount()-1, cfg)
}
