package undo

import (
	"testing"
	"time"
)

// fakeClock steps time manually so coalescing-window boundaries are
// exact without sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestEngine(initial []string) (*Engine, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	e := New(initial, DefaultMaxEntries, WithClock(clock.Now))
	return e, clock
}

func TestUndoEmptyStack(t *testing.T) {
	e, _ := newTestEngine([]string{""})
	if e.CanUndo() {
		t.Error("fresh engine should have nothing to undo")
	}
	if _, ok := e.Undo([]string{"x"}); ok {
		t.Error("undo must refuse to pop the bottom snapshot")
	}
}

func TestUndoRedoLaw(t *testing.T) {
	// From state S, edit E then undo restores S; redo restores post-E.
	e, clock := newTestEngine([]string{"S"})

	clock.Advance(time.Second)
	e.MaybeSave([]string{"S"})
	postE := []string{"S", "E"}

	lines, ok := e.Undo(postE)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(lines) != 1 || lines[0] != "S" {
		t.Errorf("undo should restore S, got %v", lines)
	}

	lines, ok = e.Redo(lines)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(lines) != 2 || lines[1] != "E" {
		t.Errorf("redo should restore post-E, got %v", lines)
	}
}

func TestCoalescingWindow(t *testing.T) {
	// Type "a", wait past the window, type "b": undo reverts to "a",
	// not to empty.
	e, clock := newTestEngine([]string{""})

	clock.Advance(time.Second)
	e.MaybeSave([]string{""}) // before 'a'

	clock.Advance(time.Second)
	e.MaybeSave([]string{"a"}) // before 'b'

	lines, ok := e.Undo([]string{"ab"})
	if !ok {
		t.Fatal("undo should succeed")
	}
	if lines[0] != "a" {
		t.Errorf("undo should revert to %q, got %q", "a", lines[0])
	}

	lines, ok = e.Undo(lines)
	if !ok {
		t.Fatal("second undo should succeed")
	}
	if lines[0] != "" {
		t.Errorf("second undo should revert to empty, got %q", lines[0])
	}
}

func TestRapidEditsCoalesce(t *testing.T) {
	e, clock := newTestEngine([]string{""})

	clock.Advance(time.Second)
	e.MaybeSave([]string{""}) // first keystroke snapshots

	// Keystrokes inside the window share the snapshot.
	for _, s := range []string{"h", "he", "hel", "hell"} {
		clock.Advance(10 * time.Millisecond)
		e.MaybeSave([]string{s})
	}

	lines, ok := e.Undo([]string{"hello"})
	if !ok {
		t.Fatal("undo should succeed")
	}
	if lines[0] != "" {
		t.Errorf("coalesced undo should revert to empty, got %q", lines[0])
	}
	if e.CanUndo() {
		t.Error("only the bottom snapshot should remain")
	}
}

func TestEditClearsRedo(t *testing.T) {
	e, clock := newTestEngine([]string{""})

	clock.Advance(time.Second)
	e.MaybeSave([]string{""})
	if _, ok := e.Undo([]string{"a"}); !ok {
		t.Fatal("undo should succeed")
	}
	if !e.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	// A new edit forks linear history: redo must drop.
	clock.Advance(time.Millisecond)
	e.MaybeSave([]string{""})
	if e.CanRedo() {
		t.Error("edit must clear the redo stack")
	}
}

func TestMaxEntriesEviction(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	e := New([]string{""}, 3, WithClock(clock.Now))

	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		e.MaybeSave([]string{string(rune('a' + i))})
	}

	// Cap of 3 leaves at most 2 undo steps above the bottom entry.
	steps := 0
	cur := []string{"z"}
	for {
		lines, ok := e.Undo(cur)
		if !ok {
			break
		}
		cur = lines
		steps++
	}
	if steps != 2 {
		t.Errorf("expected 2 undo steps after eviction, got %d", steps)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	e, clock := newTestEngine([]string{""})

	state := []string{"x"}
	clock.Advance(time.Second)
	e.MaybeSave(state)
	state[0] = "mutated"

	lines, ok := e.Undo([]string{"y"})
	if !ok {
		t.Fatal("undo should succeed")
	}
	if lines[0] != "x" {
		t.Errorf("snapshot must be an independent copy, got %q", lines[0])
	}
}

func TestReset(t *testing.T) {
	e, clock := newTestEngine([]string{"old"})
	clock.Advance(time.Second)
	e.MaybeSave([]string{"old"})

	e.Reset([]string{""})
	if e.CanUndo() || e.CanRedo() {
		t.Error("reset should clear both stacks")
	}
}

func TestWithWindow(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	e := New([]string{""}, 10, WithClock(clock.Now), WithWindow(50*time.Millisecond))

	clock.Advance(60 * time.Millisecond)
	e.MaybeSave([]string{"a"})
	if !e.CanUndo() {
		t.Error("snapshot should push once the custom window elapses")
	}
}
