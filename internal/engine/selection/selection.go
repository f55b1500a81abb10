// Package selection tracks the anchor/active span marked over a buffer
// and the splice operations that consume it.
package selection

import (
	"strings"

	"github.com/tuikit/promptbox/internal/engine/buffer"
)

// Selection is an anchor/active pair of cursor positions plus an
// activity flag. The pair is stored as set; the normalized (start, end)
// ordering is computed on demand, never stored.
type Selection struct {
	Anchor buffer.Position
	Active buffer.Position
	on     bool
}

// IsActive returns true if a selection is currently marked.
func (s *Selection) IsActive() bool {
	return s.on
}

// Begin starts a selection anchored at p with no extent yet.
func (s *Selection) Begin(p buffer.Position) {
	s.Anchor = p
	s.Active = p
	s.on = true
}

// Update moves the active endpoint to p, leaving the anchor fixed.
func (s *Selection) Update(p buffer.Position) {
	s.Active = p
}

// Clear deactivates the selection.
func (s *Selection) Clear() {
	s.on = false
}

// Normalize returns the selection endpoints ordered by (line, col).
// It is pure and idempotent; calling it twice yields identical results.
func (s *Selection) Normalize() (start, end buffer.Position) {
	if s.Anchor.After(s.Active) {
		return s.Active, s.Anchor
	}
	return s.Anchor, s.Active
}

// IsEmpty returns true if the selection has no extent.
func (s *Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// All selects the entire document of b: anchor at (0:0), active past
// the last rune of the last line.
func (s *Selection) All(b *buffer.Buffer) {
	s.Anchor = buffer.Position{}
	s.Active = b.End()
	s.on = true
}

// clampTo forces p into a valid address of b. Edits made after a
// selection was marked can leave endpoints past the new content; the
// span operations clamp rather than trust them.
func clampTo(b *buffer.Buffer, p buffer.Position) buffer.Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if last := b.LineCount() - 1; p.Line > last {
		p.Line = last
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := b.LineLen(p.Line); p.Col > n {
		p.Col = n
	}
	return p
}

// Text returns the spanned substrings of b joined with "\n". Returns
// "" if the selection is inactive.
func (s *Selection) Text(b *buffer.Buffer) string {
	if !s.on {
		return ""
	}
	start, end := s.Normalize()
	start, end = clampTo(b, start), clampTo(b, end)
	if start.Line == end.Line {
		line := []rune(b.Line(start.Line))
		return string(line[start.Col:end.Col])
	}
	var sb strings.Builder
	first := []rune(b.Line(start.Line))
	sb.WriteString(string(first[start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteString("\n")
		sb.WriteString(b.Line(i))
	}
	last := []rune(b.Line(end.Line))
	sb.WriteString("\n")
	sb.WriteString(string(last[:end.Col]))
	return sb.String()
}

// DeleteFrom splices the normalized span out of b, places the cursor
// at the span start and deactivates the selection. Returns false
// without touching b if no selection is active.
func (s *Selection) DeleteFrom(b *buffer.Buffer) bool {
	if !s.on {
		return false
	}
	start, end := s.Normalize()
	start, end = clampTo(b, start), clampTo(b, end)
	lines := b.Lines()

	if start.Line == end.Line {
		line := []rune(lines[start.Line])
		lines[start.Line] = string(line[:start.Col]) + string(line[end.Col:])
	} else {
		first := []rune(lines[start.Line])
		last := []rune(lines[end.Line])
		joined := string(first[:start.Col]) + string(last[end.Col:])
		out := make([]string, 0, len(lines)-(end.Line-start.Line))
		out = append(out, lines[:start.Line]...)
		out = append(out, joined)
		out = append(out, lines[end.Line+1:]...)
		lines = out
	}

	b.SetLines(lines)
	b.SetPosition(start)
	s.on = false
	return true
}
