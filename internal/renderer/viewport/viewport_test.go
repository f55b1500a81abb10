package viewport

import "testing"

func TestFollowKeepsCursorInWindow(t *testing.T) {
	s := NewScroller(3)

	// Cursor below the window pulls it down.
	s.Follow(5)
	if s.Top() != 3 {
		t.Errorf("expected top 3, got %d", s.Top())
	}

	// Cursor inside the window leaves it alone.
	s.Follow(4)
	if s.Top() != 3 {
		t.Errorf("expected top to stay 3, got %d", s.Top())
	}

	// Cursor above the window snaps it up.
	s.Follow(1)
	if s.Top() != 1 {
		t.Errorf("expected top 1, got %d", s.Top())
	}
}

func TestFollowClampsNegative(t *testing.T) {
	s := NewScroller(3)
	s.Follow(-5)
	if s.Top() != 0 {
		t.Errorf("expected top 0, got %d", s.Top())
	}
}

func TestClampToShrunkDocument(t *testing.T) {
	s := NewScroller(2)
	s.Follow(9)
	s.ClampTo(4)
	if s.Top() != 3 {
		t.Errorf("expected top 3 after shrink, got %d", s.Top())
	}
}

func TestSetHeightMinimum(t *testing.T) {
	s := NewScroller(0)
	if s.Height() != 1 {
		t.Errorf("height should clamp to 1, got %d", s.Height())
	}
}
