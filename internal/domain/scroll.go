package domain

// DefaultScrollThreshold is the offset in pixels past which the nav is "scrolled".
const DefaultScrollThreshold = 50

// ScrollTracker derives the nav style flag from the vertical scroll offset.
// It keeps no history: every Update recomputes the flag from the offset alone.
type ScrollTracker struct {
	Threshold float64
	scrolled  bool
}

// NewScrollTracker returns a tracker in the not-scrolled state.
func NewScrollTracker(threshold int) *ScrollTracker {
	if threshold < 0 {
		threshold = DefaultScrollThreshold
	}
	return &ScrollTracker{Threshold: float64(threshold)}
}

// Update handles one scroll event and returns the new flag.
func (s *ScrollTracker) Update(offsetY float64) bool {
	s.scrolled = offsetY > s.Threshold
	return s.scrolled
}

// Scrolled reports the flag computed at the last Update.
func (s *ScrollTracker) Scrolled() bool {
	return s.scrolled
}

// NavClass is the class list of the navigation bar.
func (s *ScrollTracker) NavClass() string {
	if s.scrolled {
		return "nav nav--scrolled"
	}
	return "nav"
}
