package selection

import (
	"testing"

	"github.com/tuikit/promptbox/internal/engine/buffer"
)

func TestInactiveByDefault(t *testing.T) {
	var s Selection
	if s.IsActive() {
		t.Error("zero selection should be inactive")
	}
	b := buffer.FromString("abc")
	if s.DeleteFrom(b) {
		t.Error("DeleteFrom should report false when inactive")
	}
	if b.Value() != "abc" {
		t.Errorf("inactive delete must not touch the buffer, got %q", b.Value())
	}
	if s.Text(b) != "" {
		t.Error("inactive selection has no text")
	}
}

func TestNormalizeOrders(t *testing.T) {
	var s Selection
	s.Begin(buffer.Position{Line: 2, Col: 1})
	s.Update(buffer.Position{Line: 0, Col: 4})

	start, end := s.Normalize()
	if start != (buffer.Position{Line: 0, Col: 4}) {
		t.Errorf("start should be the earlier endpoint, got %v", start)
	}
	if end != (buffer.Position{Line: 2, Col: 1}) {
		t.Errorf("end should be the later endpoint, got %v", end)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	var s Selection
	s.Begin(buffer.Position{Line: 1, Col: 3})
	s.Update(buffer.Position{Line: 0, Col: 0})

	s1, e1 := s.Normalize()
	s2, e2 := s.Normalize()
	if s1 != s2 || e1 != e2 {
		t.Error("Normalize must be idempotent")
	}
}

func TestNormalizeSameLine(t *testing.T) {
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 5})
	s.Update(buffer.Position{Line: 0, Col: 2})
	start, end := s.Normalize()
	if start.Col != 2 || end.Col != 5 {
		t.Errorf("same-line normalize wrong: (%v, %v)", start, end)
	}
}

func TestTextSameLine(t *testing.T) {
	b := buffer.FromString("hello world")
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 6})
	s.Update(buffer.Position{Line: 0, Col: 11})
	if got := s.Text(b); got != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
}

func TestTextMultiLine(t *testing.T) {
	b := buffer.FromString("one\ntwo\nthree")
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 2})
	s.Update(buffer.Position{Line: 2, Col: 3})
	if got := s.Text(b); got != "e\ntwo\nthr" {
		t.Errorf("expected %q, got %q", "e\ntwo\nthr", got)
	}
}

func TestDeleteSpanJoinsLines(t *testing.T) {
	// Scenario: ["hello","world"], selection (0,2)-(1,3) deletes to
	// lines[0][:2] + lines[1][3:] as a single line.
	b := buffer.FromString("hello\nworld")
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 2})
	s.Update(buffer.Position{Line: 1, Col: 3})

	if !s.DeleteFrom(b) {
		t.Fatal("DeleteFrom should report true")
	}
	if b.Value() != "held" {
		t.Errorf("expected %q, got %q", "held", b.Value())
	}
	if b.Position() != (buffer.Position{Line: 0, Col: 2}) {
		t.Errorf("cursor should land at span start, got %v", b.Position())
	}
	if s.IsActive() {
		t.Error("selection should deactivate after delete")
	}
}

func TestDeleteSpanRemovesMiddleLines(t *testing.T) {
	b := buffer.FromString("aa\nbb\ncc\ndd")
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 1})
	s.Update(buffer.Position{Line: 3, Col: 1})
	s.DeleteFrom(b)
	if b.Value() != "ad" {
		t.Errorf("expected %q, got %q", "ad", b.Value())
	}
}

func TestDeleteSameLine(t *testing.T) {
	b := buffer.FromString("abcdef")
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 4})
	s.Update(buffer.Position{Line: 0, Col: 1})
	s.DeleteFrom(b)
	if b.Value() != "aef" {
		t.Errorf("expected %q, got %q", "aef", b.Value())
	}
	if b.Position() != (buffer.Position{Line: 0, Col: 1}) {
		t.Errorf("cursor should land at start, got %v", b.Position())
	}
}

func TestSelectAll(t *testing.T) {
	b := buffer.FromString("ab\ncd")
	var s Selection
	s.All(b)
	if !s.IsActive() {
		t.Fatal("select all should activate")
	}
	start, end := s.Normalize()
	if !start.IsZero() {
		t.Errorf("anchor should be (0:0), got %v", start)
	}
	if end != (buffer.Position{Line: 1, Col: 2}) {
		t.Errorf("active end should be document end, got %v", end)
	}
	if s.Text(b) != "ab\ncd" {
		t.Errorf("select-all text should be whole document, got %q", s.Text(b))
	}
}

func TestStaleSelectionClamped(t *testing.T) {
	// A selection marked before the buffer shrank must clamp, not panic.
	b := buffer.FromString("hello\nworld")
	var s Selection
	s.Begin(buffer.Position{Line: 0, Col: 2})
	s.Update(buffer.Position{Line: 1, Col: 5})

	b.SetLines([]string{"hi"})
	if got := s.Text(b); got != "" {
		t.Errorf("clamped text should be empty, got %q", got)
	}
	if !s.DeleteFrom(b) {
		t.Fatal("delete still reports true for an active selection")
	}
	if b.Value() != "hi" {
		t.Errorf("clamped delete should leave %q, got %q", "hi", b.Value())
	}
}
