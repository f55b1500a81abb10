package editor

import (
	"strings"
	"unicode"

	"github.com/tuikit/promptbox/internal/engine/buffer"
	"github.com/tuikit/promptbox/internal/input/key"
)

// HandleKey maps one key event onto the editing state machine and
// reports whether it was consumed. Rules are checked in a fixed
// precedence order; earlier categories win when a chord could match
// more than one:
//
//	submit > history recall > undo/redo > select-all/extension >
//	clipboard > kill ops > word motion > plain motion > newline > insert
func (e *Editor) HandleKey(ev key.Event) bool {
	if !e.focused {
		return false
	}
	handled := e.dispatch(ev)
	if handled {
		e.syncScroll()
	}
	return handled
}

func (e *Editor) dispatch(ev key.Event) bool {
	mods := ev.Modifiers
	shift := mods.HasShift()

	// Submission: plain Enter.
	if ev.Key == key.KeyEnter && mods.IsEmpty() {
		e.submit()
		return true
	}

	// History recall: Ctrl+Up/Down anywhere, or plain Up/Down at the
	// document edge with no selection (the chat-input idiom).
	if ev.Key == key.KeyUp && mods == key.ModCtrl {
		e.navigateHistory(-1)
		return true
	}
	if ev.Key == key.KeyDown && mods == key.ModCtrl {
		e.navigateHistory(+1)
		return true
	}
	if ev.Key == key.KeyUp && mods.IsEmpty() && !e.sel.IsActive() && e.buf.Position().Line == 0 {
		if e.navigateHistory(-1) {
			return true
		}
		// No older entry; fall through to plain motion below.
	}
	if ev.Key == key.KeyDown && mods.IsEmpty() && !e.sel.IsActive() &&
		e.buf.Position().Line == e.buf.LineCount()-1 && e.recall.Browsing() {
		if e.navigateHistory(+1) {
			return true
		}
	}

	// Undo/redo.
	if isCtrlRune(ev, 'z') {
		if shift {
			e.redo()
		} else {
			e.undoStep()
		}
		return true
	}
	if isCtrlRune(ev, 'y') {
		e.redo()
		return true
	}

	// Select all and shift-extended motion.
	if isCtrlRune(ev, 'a') && !shift {
		e.selectAll()
		return true
	}
	if motion, ok := e.motionFor(ev); ok && shift {
		e.extendSelection(motion)
		return true
	}

	// Clipboard.
	if isCtrlRune(ev, 'c') {
		e.copySelection()
		return true
	}
	if isCtrlRune(ev, 'x') {
		e.cutSelection()
		return true
	}
	if isCtrlRune(ev, 'v') {
		e.paste()
		return true
	}

	// Kill and word-delete operations.
	if isCtrlRune(ev, 'k') {
		e.edit(func(b *buffer.Buffer) { b.KillLine() })
		return true
	}
	if isCtrlRune(ev, 'u') {
		e.edit(func(b *buffer.Buffer) { b.KillFullLine() })
		return true
	}
	if isCtrlRune(ev, 'w') {
		e.edit(func(b *buffer.Buffer) { b.DeleteWordLeft() })
		return true
	}
	if ev.Key == key.KeyTab && shift {
		e.edit(func(b *buffer.Buffer) { b.OutdentLine() })
		return true
	}

	// Word and plain motion (non-shifted; shifted matched above).
	if motion, ok := e.motionFor(ev); ok {
		e.move(motion)
		return true
	}

	// Newline: Alt+Enter or Shift+Enter.
	if ev.Key == key.KeyEnter {
		e.insertNewline()
		return true
	}

	// Deletion keys.
	if ev.Key == key.KeyBackspace {
		e.deleteBackward()
		return true
	}
	if ev.Key == key.KeyDelete {
		e.deleteForward()
		return true
	}

	// Literal tab, then plain character insertion.
	if ev.Key == key.KeyTab && mods.IsEmpty() {
		e.insertRune('\t')
		return true
	}
	if ev.IsChar() {
		e.insertRune(ev.Rune)
		return true
	}

	return false
}

// isCtrlRune matches Ctrl plus a letter, ignoring Shift so chords like
// Ctrl+Shift+Z still resolve to their letter.
func isCtrlRune(ev key.Event, r rune) bool {
	return ev.Key == key.KeyRune &&
		ev.Modifiers.HasCtrl() &&
		!ev.Modifiers.HasAlt() && !ev.Modifiers.HasMeta() &&
		unicode.ToLower(ev.Rune) == r
}

// motionFor resolves a key chord to a cursor motion. Ctrl or Alt on a
// horizontal arrow selects word motion; Ctrl+Home/End jump to the
// document edges.
func (e *Editor) motionFor(ev key.Event) (func(*buffer.Buffer), bool) {
	word := ev.Modifiers.HasCtrl() || ev.Modifiers.HasAlt()
	switch ev.Key {
	case key.KeyLeft:
		if word {
			return (*buffer.Buffer).WordLeft, true
		}
		return (*buffer.Buffer).MoveLeft, true
	case key.KeyRight:
		if word {
			return (*buffer.Buffer).WordRight, true
		}
		return (*buffer.Buffer).MoveRight, true
	case key.KeyUp:
		if word {
			return nil, false // Ctrl+Up is history recall
		}
		return (*buffer.Buffer).MoveUp, true
	case key.KeyDown:
		if word {
			return nil, false
		}
		return (*buffer.Buffer).MoveDown, true
	case key.KeyHome:
		if ev.Modifiers.HasCtrl() {
			return (*buffer.Buffer).MoveDocStart, true
		}
		return (*buffer.Buffer).MoveLineStart, true
	case key.KeyEnd:
		if ev.Modifiers.HasCtrl() {
			return (*buffer.Buffer).MoveDocEnd, true
		}
		return (*buffer.Buffer).MoveLineEnd, true
	case key.KeyPageUp:
		return e.pageMotion(-1), true
	case key.KeyPageDown:
		return e.pageMotion(+1), true
	}
	return nil, false
}

// pageMotion moves the cursor by one panel height.
func (e *Editor) pageMotion(dir int) func(*buffer.Buffer) {
	height := e.scroll.Height()
	return func(b *buffer.Buffer) {
		for i := 0; i < height; i++ {
			if dir < 0 {
				b.MoveUp()
			} else {
				b.MoveDown()
			}
		}
	}
}

// move performs a non-shifted motion: an active selection is cleared
// before the cursor moves.
func (e *Editor) move(motion func(*buffer.Buffer)) {
	if e.sel.IsActive() {
		e.sel.Clear()
	}
	motion(e.buf)
}

// extendSelection anchors a selection at the cursor if none is active,
// performs the motion, then moves the active endpoint to the cursor.
func (e *Editor) extendSelection(motion func(*buffer.Buffer)) {
	if !e.sel.IsActive() {
		e.sel.Begin(e.buf.Position())
	}
	motion(e.buf)
	e.sel.Update(e.buf.Position())
}

func (e *Editor) selectAll() {
	e.sel.All(e.buf)
	e.buf.SetPosition(e.buf.End())
}

func (e *Editor) undoStep() {
	lines, ok := e.undo.Undo(e.buf.Lines())
	if !ok {
		return
	}
	e.recall.Stop()
	e.buf.SetLines(lines)
	// Cursor tracking across snapshots is not kept; reset to the
	// document start.
	e.buf.MoveDocStart()
	e.sel.Clear()
}

func (e *Editor) redo() {
	lines, ok := e.undo.Redo(e.buf.Lines())
	if !ok {
		return
	}
	e.recall.Stop()
	e.buf.SetLines(lines)
	e.buf.MoveDocStart()
	e.sel.Clear()
}

func (e *Editor) navigateHistory(dir int) bool {
	lines, ok := e.recall.Navigate(dir, e.buf.Lines())
	if !ok {
		return false
	}
	e.undo.MaybeSave(e.buf.Lines())
	e.buf.SetLines(lines)
	e.buf.MoveDocEnd()
	e.sel.Clear()
	return true
}

func (e *Editor) copySelection() {
	if !e.sel.IsActive() {
		return
	}
	text := e.sel.Text(e.buf)
	e.clip.Set(text)
	if e.onCopy != nil {
		e.onCopy(text)
	}
}

func (e *Editor) cutSelection() {
	if !e.sel.IsActive() {
		return
	}
	e.copySelection()
	e.beginEdit()
	e.sel.DeleteFrom(e.buf)
}

func (e *Editor) paste() {
	value, ok := e.clip.Get()
	if !ok || value == "" {
		return
	}
	if e.maxLines > 0 {
		after := e.buf.LineCount() - e.selectedLineSpan() + strings.Count(value, "\n")
		if after > e.maxLines {
			return
		}
	}
	e.beginEdit()
	e.sel.DeleteFrom(e.buf)
	e.buf.InsertString(value)
}

func (e *Editor) insertNewline() {
	if e.maxLines > 0 {
		after := e.buf.LineCount() - e.selectedLineSpan() + 1
		if after > e.maxLines {
			return
		}
	}
	e.beginEdit()
	e.sel.DeleteFrom(e.buf)
	e.buf.InsertNewline()
}

func (e *Editor) insertRune(r rune) {
	e.beginEdit()
	e.sel.DeleteFrom(e.buf)
	e.buf.InsertRune(r)
}

func (e *Editor) deleteBackward() {
	e.beginEdit()
	if e.sel.DeleteFrom(e.buf) {
		return
	}
	e.buf.Backspace()
}

func (e *Editor) deleteForward() {
	e.beginEdit()
	if e.sel.DeleteFrom(e.buf) {
		return
	}
	e.buf.Delete()
}

// edit wraps a buffer mutation with the shared pre-edit policy. Kill
// operations act on the cursor, not the selection, so any marked span
// is dropped first.
func (e *Editor) edit(fn func(*buffer.Buffer)) {
	e.beginEdit()
	e.sel.Clear()
	fn(e.buf)
}

// selectedLineSpan returns how many line breaks an active selection
// covers, for the soft line-cap arithmetic.
func (e *Editor) selectedLineSpan() int {
	if !e.sel.IsActive() {
		return 0
	}
	start, end := e.sel.Normalize()
	return end.Line - start.Line
}
