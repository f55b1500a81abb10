package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell key event into an Event.
//
// tcell reports Ctrl-letter chords as dedicated key codes that overlap
// Enter, Tab and Backspace; the named keys are matched first so the
// remaining codes can be folded back into Ctrl+rune events.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMods(ev.Modifiers())

	var out Event
	switch ev.Key() {
	case tcell.KeyEnter:
		out = NewSpecialEvent(KeyEnter, mods)
	case tcell.KeyTab:
		out = NewSpecialEvent(KeyTab, mods)
	case tcell.KeyBacktab:
		out = NewSpecialEvent(KeyTab, mods.With(ModShift))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out = NewSpecialEvent(KeyBackspace, mods)
	case tcell.KeyDelete:
		out = NewSpecialEvent(KeyDelete, mods)
	case tcell.KeyEscape:
		out = NewSpecialEvent(KeyEscape, mods)
	case tcell.KeyHome:
		out = NewSpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		out = NewSpecialEvent(KeyEnd, mods)
	case tcell.KeyPgUp:
		out = NewSpecialEvent(KeyPageUp, mods)
	case tcell.KeyPgDn:
		out = NewSpecialEvent(KeyPageDown, mods)
	case tcell.KeyUp:
		out = NewSpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		out = NewSpecialEvent(KeyDown, mods)
	case tcell.KeyLeft:
		out = NewSpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		out = NewSpecialEvent(KeyRight, mods)
	case tcell.KeyRune:
		out = NewRuneEvent(ev.Rune(), mods)
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + int(k) - int(tcell.KeyCtrlA))
			out = NewRuneEvent(r, mods.With(ModCtrl))
		} else {
			out = NewSpecialEvent(KeyNone, mods)
		}
	}

	out.Sequence = ev.Name()
	return out
}

func fromTcellMods(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
