package buffer

import "strings"

// Buffer holds an ordered, never-empty sequence of lines and the
// cursor addressing them. Lines contain no embedded newlines.
//
// Every operation is total: out-of-range indexes are clamped, never
// rejected, so callers cannot drive the buffer into an invalid state.
// Columns are measured in runes, not bytes; grapheme clusters are not
// handled (a combining sequence counts as multiple columns).
type Buffer struct {
	lines []string
	pos   Position
}

// New creates an empty buffer: a single empty line with the cursor at (0:0).
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromString creates a buffer holding s, split on "\n".
// The cursor is placed at the end of the document.
func FromString(s string) *Buffer {
	b := New()
	b.SetValue(s)
	return b
}

// Value returns the full document as a single "\n"-joined string.
func (b *Buffer) Value() string {
	return strings.Join(b.lines, "\n")
}

// SetValue replaces the document with s, split on "\n", and moves the
// cursor to the end of the document. SetValue(s) followed by Value()
// round-trips exactly.
func (b *Buffer) SetValue(s string) {
	b.lines = strings.Split(s, "\n")
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.MoveDocEnd()
}

// Clear resets the buffer to a single empty line.
func (b *Buffer) Clear() {
	b.lines = []string{""}
	b.pos = Position{}
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at index i, clamped into range.
func (b *Buffer) Line(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= len(b.lines) {
		i = len(b.lines) - 1
	}
	return b.lines[i]
}

// Lines returns a copy of the line slice.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// SetLines replaces the line slice with a copy of lines, preserving the
// never-empty invariant, and clamps the cursor.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
	b.pos = b.clamp(b.pos)
}

// Position returns the current cursor position.
func (b *Buffer) Position() Position {
	return b.pos
}

// SetPosition moves the cursor to p, clamped into the document.
func (b *Buffer) SetPosition(p Position) {
	b.pos = b.clamp(p)
}

// LineLen returns the rune length of line i, clamped into range.
func (b *Buffer) LineLen(i int) int {
	return len([]rune(b.Line(i)))
}

// End returns the position just past the last rune of the last line.
func (b *Buffer) End() Position {
	last := len(b.lines) - 1
	return Position{Line: last, Col: len([]rune(b.lines[last]))}
}

// IsEmpty returns true if the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// clamp forces p into a valid cursor address.
func (b *Buffer) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if max := len([]rune(b.lines[p.Line])); p.Col > max {
		p.Col = max
	}
	return p
}

// runes returns line i as a rune slice.
func (b *Buffer) runes(i int) []rune {
	return []rune(b.Line(i))
}
