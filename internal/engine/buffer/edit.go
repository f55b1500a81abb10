package buffer

import "strings"

// InsertRune splices r into the current line at the cursor and
// advances the cursor one column.
func (b *Buffer) InsertRune(r rune) {
	b.pos = b.clamp(b.pos)
	line := b.runes(b.pos.Line)
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:b.pos.Col]...)
	out = append(out, r)
	out = append(out, line[b.pos.Col:]...)
	b.lines[b.pos.Line] = string(out)
	b.pos.Col++
}

// InsertString splices s into the document at the cursor. Embedded
// newlines split the current line: the first segment joins the text
// before the cursor, the last segment is prepended to the text after
// it, and middle segments become whole lines in between. The cursor
// lands immediately after the inserted content.
func (b *Buffer) InsertString(s string) {
	if s == "" {
		return
	}
	b.pos = b.clamp(b.pos)
	line := b.runes(b.pos.Line)
	before := string(line[:b.pos.Col])
	after := string(line[b.pos.Col:])

	segs := strings.Split(s, "\n")
	if len(segs) == 1 {
		b.lines[b.pos.Line] = before + segs[0] + after
		b.pos.Col += len([]rune(segs[0]))
		return
	}

	last := segs[len(segs)-1]
	repl := make([]string, 0, len(segs))
	repl = append(repl, before+segs[0])
	repl = append(repl, segs[1:len(segs)-1]...)
	repl = append(repl, last+after)

	out := make([]string, 0, len(b.lines)+len(repl)-1)
	out = append(out, b.lines[:b.pos.Line]...)
	out = append(out, repl...)
	out = append(out, b.lines[b.pos.Line+1:]...)
	b.lines = out

	b.pos.Line += len(segs) - 1
	b.pos.Col = len([]rune(last))
}

// InsertNewline splits the current line at the cursor. The new line
// inherits the leading whitespace run of the split line (auto-indent)
// and the cursor lands after that indent.
func (b *Buffer) InsertNewline() {
	b.pos = b.clamp(b.pos)
	line := b.runes(b.pos.Line)
	head := string(line[:b.pos.Col])
	indent := leadingWhitespace(head)
	tail := indent + string(line[b.pos.Col:])

	out := make([]string, 0, len(b.lines)+1)
	out = append(out, b.lines[:b.pos.Line]...)
	out = append(out, head, tail)
	out = append(out, b.lines[b.pos.Line+1:]...)
	b.lines = out

	b.pos = Position{Line: b.pos.Line + 1, Col: len([]rune(indent))}
}

// Backspace deletes the rune before the cursor. At column 0 it joins
// the current line onto the previous one, placing the cursor at the
// join point. At the document start it is a no-op.
func (b *Buffer) Backspace() {
	b.pos = b.clamp(b.pos)
	if b.pos.Col > 0 {
		line := b.runes(b.pos.Line)
		b.lines[b.pos.Line] = string(line[:b.pos.Col-1]) + string(line[b.pos.Col:])
		b.pos.Col--
		return
	}
	if b.pos.Line == 0 {
		return
	}
	prev := b.runes(b.pos.Line - 1)
	joinCol := len(prev)
	b.lines[b.pos.Line-1] = string(prev) + b.lines[b.pos.Line]
	b.lines = append(b.lines[:b.pos.Line], b.lines[b.pos.Line+1:]...)
	b.pos = Position{Line: b.pos.Line - 1, Col: joinCol}
}

// Delete deletes the rune under the cursor. At end of line it joins
// the next line up. At the document end it is a no-op.
func (b *Buffer) Delete() {
	b.pos = b.clamp(b.pos)
	line := b.runes(b.pos.Line)
	if b.pos.Col < len(line) {
		b.lines[b.pos.Line] = string(line[:b.pos.Col]) + string(line[b.pos.Col+1:])
		return
	}
	if b.pos.Line == len(b.lines)-1 {
		return
	}
	b.lines[b.pos.Line] = string(line) + b.lines[b.pos.Line+1]
	b.lines = append(b.lines[:b.pos.Line+1], b.lines[b.pos.Line+2:]...)
}

// KillLine deletes from the cursor to the end of the line. If the
// cursor is already at end of line, it joins the next line up instead.
func (b *Buffer) KillLine() {
	b.pos = b.clamp(b.pos)
	line := b.runes(b.pos.Line)
	if b.pos.Col < len(line) {
		b.lines[b.pos.Line] = string(line[:b.pos.Col])
		return
	}
	b.Delete()
}

// KillFullLine removes the entire current line. If it is the only
// line, its content is cleared instead so the buffer never empties.
func (b *Buffer) KillFullLine() {
	b.pos = b.clamp(b.pos)
	if len(b.lines) == 1 {
		b.lines[0] = ""
		b.pos = Position{}
		return
	}
	b.lines = append(b.lines[:b.pos.Line], b.lines[b.pos.Line+1:]...)
	b.pos = b.clamp(Position{Line: b.pos.Line, Col: 0})
}

// OutdentLine removes one level of leading indentation from the
// current line: a single tab, else up to two spaces, else one space.
// The cursor column shifts left by the removed width, clamped at 0.
func (b *Buffer) OutdentLine() {
	b.pos = b.clamp(b.pos)
	line := b.lines[b.pos.Line]

	var removed int
	switch {
	case strings.HasPrefix(line, "\t"):
		removed = 1
	case strings.HasPrefix(line, "  "):
		removed = 2
	case strings.HasPrefix(line, " "):
		removed = 1
	default:
		return
	}
	b.lines[b.pos.Line] = line[removed:]
	b.pos.Col -= removed
	if b.pos.Col < 0 {
		b.pos.Col = 0
	}
}

// leadingWhitespace returns the run of spaces and tabs at the start of s.
func leadingWhitespace(s string) string {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return s[:i]
		}
	}
	return s
}
