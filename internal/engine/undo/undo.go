// Package undo implements snapshot-based undo and redo with
// time-windowed coalescing.
//
// Snapshots are full copies of the buffer's line slice; at prompt-box
// scale this is cheaper and simpler than an operation log. Restoring a
// snapshot does not restore the cursor; callers reset it to the
// document start, a known simplification carried over from the source
// behavior.
package undo

import "time"

// DefaultWindow is the coalescing interval: edits landing within this
// window of the last snapshot share an undo step.
const DefaultWindow = 500 * time.Millisecond

// DefaultMaxEntries bounds both stacks.
const DefaultMaxEntries = 100

type snapshot struct {
	lines []string
	taken time.Time
}

// Engine holds the undo and redo stacks for one buffer.
//
// The undo stack is never empty: the initial state pushed by New is
// the bottom entry and Undo refuses to pop past it.
type Engine struct {
	undo []snapshot
	redo []snapshot

	maxEntries int
	window     time.Duration
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source. Used by tests to step across
// the coalescing window without sleeping.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithWindow overrides the coalescing interval.
func WithWindow(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.window = d
		}
	}
}

// New creates an engine seeded with initial as the bottom snapshot.
func New(initial []string, maxEntries int, opts ...Option) *Engine {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	e := &Engine{
		maxEntries: maxEntries,
		window:     DefaultWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.undo = append(e.undo, snapshot{lines: copyLines(initial), taken: e.now()})
	return e
}

// Reset discards both stacks and re-seeds with initial.
func (e *Engine) Reset(initial []string) {
	e.undo = e.undo[:0]
	e.redo = nil
	e.undo = append(e.undo, snapshot{lines: copyLines(initial), taken: e.now()})
}

// MaybeSave is called before a mutating operation with the pre-edit
// line slice. It clears the redo stack (linear history) and pushes a
// snapshot only if the coalescing window since the last push has
// elapsed, so rapid keystrokes collapse into one undo step.
func (e *Engine) MaybeSave(lines []string) {
	e.redo = nil

	last := e.undo[len(e.undo)-1]
	now := e.now()
	if now.Sub(last.taken) < e.window {
		return
	}
	e.undo = append(e.undo, snapshot{lines: copyLines(lines), taken: now})
	if len(e.undo) > e.maxEntries {
		excess := len(e.undo) - e.maxEntries
		e.undo = e.undo[excess:]
	}
}

// Undo pushes current onto the redo stack and returns the most recent
// snapshot. It refuses to pop the bottom entry: ok is false when only
// the initial snapshot remains.
func (e *Engine) Undo(current []string) (lines []string, ok bool) {
	if len(e.undo) <= 1 {
		return nil, false
	}
	top := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, snapshot{lines: copyLines(current), taken: e.now()})
	return copyLines(top.lines), true
}

// Redo pushes current onto the undo stack and returns the most
// recently undone snapshot. ok is false when the redo stack is empty.
func (e *Engine) Redo(current []string) (lines []string, ok bool) {
	if len(e.redo) == 0 {
		return nil, false
	}
	top := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, snapshot{lines: copyLines(current), taken: e.now()})
	if len(e.undo) > e.maxEntries {
		excess := len(e.undo) - e.maxEntries
		e.undo = e.undo[excess:]
	}
	return copyLines(top.lines), true
}

// CanUndo returns true if an undo step is available.
func (e *Engine) CanUndo() bool {
	return len(e.undo) > 1
}

// CanRedo returns true if a redo step is available.
func (e *Engine) CanRedo() bool {
	return len(e.redo) > 0
}

func copyLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
