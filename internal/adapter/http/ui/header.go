package ui

// HeaderTracker hides the fixed header while scrolling down past it and shows it again
// on any upward scroll.
type HeaderTracker struct {
	height int
	last   int
	hidden bool
}

func NewHeaderTracker(height int) *HeaderTracker {
	return &HeaderTracker{height: height}
}

// Update takes the new scroll offset and returns whether the header is hidden.
func (h *HeaderTracker) Update(offset int) bool {
	switch {
	case offset > h.last && offset > h.height:
		h.hidden = true
	case offset < h.last:
		h.hidden = false
	}
	h.last = offset
	return h.hidden
}

func (h *HeaderTracker) Hidden() bool { return h.hidden }

func (h *HeaderTracker) Height() int { return h.height }

// HeaderFromOffset replays a scroll from the top of the page to offset, which is how a
// reload that restores the scroll position sees it. Non-positive offsets leave it shown.
func HeaderFromOffset(height, offset int) *HeaderTracker {
	h := NewHeaderTracker(height)
	if offset > 0 {
		h.Update(offset)
	}
	return h
}

func (h *HeaderTracker) Offset() int { return h.last }
