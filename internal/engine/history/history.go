// Package history implements shell-style recall of previously
// submitted values. It is distinct from undo history: entries are
// whole submitted strings, browsed with a cursor index while the
// in-progress buffer is parked in a temp slot.
package history

import "strings"

// DefaultCapacity bounds the entry list.
const DefaultCapacity = 100

// Browsing index sentinel: not browsing.
const notBrowsing = -1

// Recall is a capped ordered list of submitted values plus the
// browsing state. Index 0 of the browse cursor is the most recent
// entry; the stored slice keeps oldest first.
type Recall struct {
	entries []string
	max     int

	index int      // notBrowsing, or 0-based from most recent
	temp  []string // buffer lines parked when browsing began
}

// New creates a Recall with the given capacity.
func New(capacity int) *Recall {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recall{max: capacity, index: notBrowsing}
}

// Append records a submitted value. Empty (after trimming) values and
// values equal to the most recent entry are dropped; the oldest entry
// is evicted once the capacity is exceeded.
func (r *Recall) Append(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if n := len(r.entries); n > 0 && r.entries[n-1] == value {
		return
	}
	r.entries = append(r.entries, value)
	if len(r.entries) > r.max {
		excess := len(r.entries) - r.max
		r.entries = r.entries[excess:]
	}
}

// Entries returns a copy of the stored values, oldest first.
func (r *Recall) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// SetEntries replaces the stored values, trimming to capacity from the
// oldest end. Used to seed recall from a persisted history; callers
// validate entries at the boundary before handing them in.
func (r *Recall) SetEntries(entries []string) {
	if len(entries) > r.max {
		entries = entries[len(entries)-r.max:]
	}
	r.entries = make([]string, len(entries))
	copy(r.entries, entries)
	r.index = notBrowsing
	r.temp = nil
}

// Len returns the number of stored entries.
func (r *Recall) Len() int {
	return len(r.entries)
}

// Browsing returns true while a navigation session is open.
func (r *Recall) Browsing() bool {
	return r.index != notBrowsing
}

// Navigate steps through stored entries. dir = -1 moves toward older
// entries, dir = +1 toward newer. On the first step away from the
// in-progress buffer its lines are parked in the temp slot; stepping
// newer past the most recent entry restores them. The replacement
// buffer lines are returned with ok true; ok is false if the step hit
// a clamp and nothing changed.
func (r *Recall) Navigate(dir int, current []string) (lines []string, ok bool) {
	if len(r.entries) == 0 {
		return nil, false
	}

	next := r.index - dir
	if next < notBrowsing {
		next = notBrowsing
	}
	if next > len(r.entries)-1 {
		next = len(r.entries) - 1
	}
	if next == r.index {
		return nil, false
	}

	if r.index == notBrowsing {
		r.temp = make([]string, len(current))
		copy(r.temp, current)
	}
	r.index = next

	if r.index == notBrowsing {
		lines = r.temp
		if lines == nil {
			lines = []string{""}
		}
		r.temp = nil
		return lines, true
	}
	entry := r.entries[len(r.entries)-1-r.index]
	return strings.Split(entry, "\n"), true
}

// Stop abandons a browsing session without restoring the temp slot.
// Called when the user edits a recalled entry: the edited content is
// the new in-progress buffer.
func (r *Recall) Stop() {
	r.index = notBrowsing
	r.temp = nil
}

// Reset clears the browsing state after a submit.
func (r *Recall) Reset() {
	r.index = notBrowsing
	r.temp = nil
}
