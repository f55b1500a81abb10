package buffer

// MoveLeft moves the cursor one column left, crossing to the end of
// the previous line at column 0. No-op at the document start.
func (b *Buffer) MoveLeft() {
	b.pos = b.clamp(b.pos)
	if b.pos.Col > 0 {
		b.pos.Col--
		return
	}
	if b.pos.Line > 0 {
		b.pos.Line--
		b.pos.Col = b.LineLen(b.pos.Line)
	}
}

// MoveRight moves the cursor one column right, crossing to the start
// of the next line at end of line. No-op at the document end.
func (b *Buffer) MoveRight() {
	b.pos = b.clamp(b.pos)
	if b.pos.Col < b.LineLen(b.pos.Line) {
		b.pos.Col++
		return
	}
	if b.pos.Line < len(b.lines)-1 {
		b.pos.Line++
		b.pos.Col = 0
	}
}

// MoveUp moves the cursor one line up, clamping the column to the
// target line's length. There is no sticky-column memory.
func (b *Buffer) MoveUp() {
	if b.pos.Line > 0 {
		b.pos.Line--
	}
	b.pos = b.clamp(b.pos)
}

// MoveDown moves the cursor one line down, clamping the column to the
// target line's length.
func (b *Buffer) MoveDown() {
	if b.pos.Line < len(b.lines)-1 {
		b.pos.Line++
	}
	b.pos = b.clamp(b.pos)
}

// MoveLineStart moves the cursor to column 0 of the current line.
func (b *Buffer) MoveLineStart() {
	b.pos = b.clamp(b.pos)
	b.pos.Col = 0
}

// MoveLineEnd moves the cursor past the last rune of the current line.
func (b *Buffer) MoveLineEnd() {
	b.pos = b.clamp(b.pos)
	b.pos.Col = b.LineLen(b.pos.Line)
}

// MoveDocStart moves the cursor to (0:0).
func (b *Buffer) MoveDocStart() {
	b.pos = Position{}
}

// MoveDocEnd moves the cursor past the last rune of the last line.
func (b *Buffer) MoveDocEnd() {
	b.pos = b.End()
}
