// Package viewport derives the visible line window from the cursor
// position and projects it into a drawable snapshot.
//
// The projection is pure: the underlying buffer keeps literal tabs and
// full content; expansion and slicing happen per frame and may be
// repeated without side effects.
package viewport

// DefaultHeight is the panel height used when none is configured.
const DefaultHeight = 6

// Scroller maintains the scroll offset so the cursor line always stays
// inside the visible window.
type Scroller struct {
	top    int
	height int
}

// NewScroller creates a scroller for a panel of the given height.
// Height is clamped to a minimum of 1.
func NewScroller(height int) *Scroller {
	s := &Scroller{}
	s.SetHeight(height)
	return s
}

// Height returns the visible height in lines.
func (s *Scroller) Height() int {
	return s.height
}

// SetHeight resizes the visible window, clamped to a minimum of 1.
func (s *Scroller) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.height = height
}

// Top returns the first visible line.
func (s *Scroller) Top() int {
	return s.top
}

// Follow adjusts the scroll offset so cursorLine falls within
// [top, top+height-1]: above the window snaps the window up to it,
// below snaps the window down.
func (s *Scroller) Follow(cursorLine int) {
	if cursorLine < 0 {
		cursorLine = 0
	}
	if cursorLine < s.top {
		s.top = cursorLine
	} else if cursorLine > s.top+s.height-1 {
		s.top = cursorLine - s.height + 1
	}
}

// ClampTo keeps the window inside a document of lineCount lines after
// the document shrinks.
func (s *Scroller) ClampTo(lineCount int) {
	if lineCount < 1 {
		lineCount = 1
	}
	if s.top > lineCount-1 {
		s.top = lineCount - 1
	}
	if s.top < 0 {
		s.top = 0
	}
}

// Reset scrolls back to the top of the document.
func (s *Scroller) Reset() {
	s.top = 0
}
