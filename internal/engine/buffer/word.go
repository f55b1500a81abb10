package buffer

// IsWordChar returns true if r is a word character (ASCII alphanumeric
// or underscore). Word motion is deliberately ASCII-only; runes outside
// this class are treated like punctuation.
func IsWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

func isWordSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// WordLeft moves the cursor to the start of the previous word: it
// skips a whitespace run, then a word-character run. At column 0 it
// crosses to the end of the previous line.
func (b *Buffer) WordLeft() {
	b.pos = b.clamp(b.pos)
	if b.pos.Col == 0 {
		if b.pos.Line > 0 {
			b.pos.Line--
			b.pos.Col = b.LineLen(b.pos.Line)
		}
		return
	}
	line := b.runes(b.pos.Line)
	col := b.pos.Col
	for col > 0 && isWordSpace(line[col-1]) {
		col--
	}
	if col > 0 && IsWordChar(line[col-1]) {
		for col > 0 && IsWordChar(line[col-1]) {
			col--
		}
	} else if col > 0 {
		for col > 0 && !IsWordChar(line[col-1]) && !isWordSpace(line[col-1]) {
			col--
		}
	}
	b.pos.Col = col
}

// WordRight moves the cursor past the end of the next word: it skips a
// whitespace run, then a word-character run. At end of line it crosses
// to the start of the next line.
func (b *Buffer) WordRight() {
	b.pos = b.clamp(b.pos)
	line := b.runes(b.pos.Line)
	if b.pos.Col >= len(line) {
		if b.pos.Line < len(b.lines)-1 {
			b.pos.Line++
			b.pos.Col = 0
		}
		return
	}
	col := b.pos.Col
	for col < len(line) && isWordSpace(line[col]) {
		col++
	}
	if col < len(line) && IsWordChar(line[col]) {
		for col < len(line) && IsWordChar(line[col]) {
			col++
		}
	} else {
		for col < len(line) && !IsWordChar(line[col]) && !isWordSpace(line[col]) {
			col++
		}
	}
	b.pos.Col = col
}

// DeleteWordLeft deletes from the start of the previous word to the
// cursor, the shell Ctrl+W behavior. At column 0 it joins lines like
// Backspace.
func (b *Buffer) DeleteWordLeft() {
	b.pos = b.clamp(b.pos)
	if b.pos.Col == 0 {
		b.Backspace()
		return
	}
	end := b.pos.Col
	b.WordLeft()
	line := b.runes(b.pos.Line)
	b.lines[b.pos.Line] = string(line[:b.pos.Col]) + string(line[end:])
}
