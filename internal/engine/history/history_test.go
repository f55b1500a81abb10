package history

import (
	"reflect"
	"testing"
)

func TestAppendDedup(t *testing.T) {
	r := New(10)
	r.Append("hello")
	r.Append("hello")
	if r.Len() != 1 {
		t.Errorf("consecutive duplicates should collapse, got %d entries", r.Len())
	}
	r.Append("world")
	r.Append("hello")
	if r.Len() != 3 {
		t.Errorf("non-consecutive duplicates are kept, got %d entries", r.Len())
	}
}

func TestAppendIgnoresEmpty(t *testing.T) {
	r := New(10)
	r.Append("")
	r.Append("   ")
	r.Append("\t\n")
	if r.Len() != 0 {
		t.Errorf("blank submissions should be dropped, got %d entries", r.Len())
	}
}

func TestAppendTrims(t *testing.T) {
	r := New(10)
	r.Append("  hi  ")
	if got := r.Entries()[0]; got != "hi" {
		t.Errorf("entries should be stored trimmed, got %q", got)
	}
}

func TestCapacityEviction(t *testing.T) {
	r := New(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		r.Append(s)
	}
	want := []string{"b", "c", "d"}
	if got := r.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("oldest entry should evict: want %v, got %v", want, got)
	}
}

func TestNavigateRecall(t *testing.T) {
	// History ["first","second"]: older steps reach "second" then
	// "first"; newer steps walk back and restore the temp buffer.
	r := New(10)
	r.Append("first")
	r.Append("second")

	current := []string{"in progress"}

	lines, ok := r.Navigate(-1, current)
	if !ok || lines[0] != "second" {
		t.Fatalf("first older step should show %q, got %v (%v)", "second", lines, ok)
	}
	if !r.Browsing() {
		t.Error("navigation should open a browsing session")
	}

	lines, ok = r.Navigate(-1, lines)
	if !ok || lines[0] != "first" {
		t.Fatalf("second older step should show %q, got %v", "first", lines)
	}

	// Clamped at the oldest entry.
	if _, ok := r.Navigate(-1, lines); ok {
		t.Error("navigating past the oldest entry should clamp")
	}

	lines, ok = r.Navigate(+1, lines)
	if !ok || lines[0] != "second" {
		t.Fatalf("newer step should show %q, got %v", "second", lines)
	}

	lines, ok = r.Navigate(+1, lines)
	if !ok || lines[0] != "in progress" {
		t.Fatalf("stepping past the newest entry should restore the temp buffer, got %v", lines)
	}
	if r.Browsing() {
		t.Error("restoring the temp buffer ends browsing")
	}
}

func TestNavigateNewerWhileNotBrowsing(t *testing.T) {
	r := New(10)
	r.Append("x")
	if _, ok := r.Navigate(+1, []string{""}); ok {
		t.Error("newer step while not browsing should be a no-op")
	}
}

func TestNavigateEmptyHistory(t *testing.T) {
	r := New(10)
	if _, ok := r.Navigate(-1, []string{""}); ok {
		t.Error("navigation with no entries should be a no-op")
	}
}

func TestNavigateMultiLineEntry(t *testing.T) {
	r := New(10)
	r.Append("one\ntwo")
	lines, ok := r.Navigate(-1, []string{""})
	if !ok {
		t.Fatal("navigate should succeed")
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("multi-line entry should split on newline, got %v", lines)
	}
}

func TestStopKeepsEditedContent(t *testing.T) {
	r := New(10)
	r.Append("old")
	if _, ok := r.Navigate(-1, []string{"draft"}); !ok {
		t.Fatal("navigate should succeed")
	}

	// An edit while browsing abandons the session without restoring.
	r.Stop()
	if r.Browsing() {
		t.Error("Stop should end browsing")
	}
	// The next browse snapshots fresh state, not the stale temp.
	lines, ok := r.Navigate(-1, []string{"edited"})
	if !ok || lines[0] != "old" {
		t.Fatalf("expected %q, got %v", "old", lines)
	}
	lines, ok = r.Navigate(+1, lines)
	if !ok || lines[0] != "edited" {
		t.Errorf("temp slot should hold the newer buffer, got %v", lines)
	}
}

func TestSetEntriesTrimsToCapacity(t *testing.T) {
	r := New(2)
	r.SetEntries([]string{"a", "b", "c"})
	want := []string{"b", "c"}
	if got := r.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("seed should trim from the oldest end: want %v, got %v", want, got)
	}
}
