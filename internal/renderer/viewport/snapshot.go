package viewport

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tuikit/promptbox/internal/engine/buffer"
)

// DefaultTabWidth is used when no tab width is configured.
const DefaultTabWidth = 4

// Span is a selection highlight range on one visible row, in display
// columns. EndCol is exclusive.
type Span struct {
	Row      int
	StartCol int
	EndCol   int
}

// Snapshot is the pull-based render state handed to a drawing
// collaborator: tab-expanded visible lines, the on-screen cursor cell
// and the selection highlight spans, all relative to the window.
type Snapshot struct {
	// TopLine is the buffer line shown on row 0.
	TopLine int

	// Lines are the visible lines with tabs expanded to spaces.
	Lines []string

	// CursorRow and CursorCol locate the cursor within the window,
	// in display columns. CursorRow is -1 when the cursor is hidden.
	CursorRow int
	CursorCol int

	// Selection holds per-row highlight ranges in display columns.
	Selection []Span

	// Placeholder is true when Lines carries placeholder text rather
	// than buffer content.
	Placeholder bool
}

// Project builds a snapshot of lines for a window starting at top with
// the given height. cursor is the buffer cursor; selStart/selEnd are
// the normalized selection endpoints, ignored unless selActive.
func Project(lines []string, cursor buffer.Position, selActive bool, selStart, selEnd buffer.Position, top, height, tabWidth int) Snapshot {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	if height < 1 {
		height = 1
	}
	if top < 0 {
		top = 0
	}
	if top > len(lines)-1 {
		top = len(lines) - 1
	}

	end := top + height
	if end > len(lines) {
		end = len(lines)
	}

	snap := Snapshot{
		TopLine:   top,
		Lines:     make([]string, 0, end-top),
		CursorRow: -1,
	}
	for i := top; i < end; i++ {
		snap.Lines = append(snap.Lines, ExpandTabs(lines[i], tabWidth))
	}

	if cursor.Line >= top && cursor.Line < end {
		snap.CursorRow = cursor.Line - top
		snap.CursorCol = DisplayCol(lines[cursor.Line], cursor.Col, tabWidth)
	}

	if selActive && selStart != selEnd {
		snap.Selection = selectionSpans(lines, selStart, selEnd, top, end, tabWidth)
	}
	return snap
}

// selectionSpans computes per-row highlight ranges for the visible
// slice [top, end).
func selectionSpans(lines []string, start, end buffer.Position, top, bottom, tabWidth int) []Span {
	var spans []Span
	for line := start.Line; line <= end.Line; line++ {
		if line < top || line >= bottom {
			continue
		}
		text := lines[line]
		startCol := 0
		if line == start.Line {
			startCol = DisplayCol(text, start.Col, tabWidth)
		}
		endCol := DisplayCol(text, len([]rune(text)), tabWidth)
		if line == end.Line {
			endCol = DisplayCol(text, end.Col, tabWidth)
		}
		if endCol <= startCol {
			continue
		}
		spans = append(spans, Span{Row: line - top, StartCol: startCol, EndCol: endCol})
	}
	return spans
}

// ExpandTabs replaces tabs in s with spaces up to the next tab stop.
// Expansion is a rendering projection; buffer content keeps its tabs.
func ExpandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// DisplayCol converts a rune offset in s to a display column,
// accounting for tab stops and wide runes.
func DisplayCol(s string, runeCol, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	col := 0
	for i, r := range []rune(s) {
		if i >= runeCol {
			break
		}
		if r == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}
