package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultRevealThreshold is the visible fraction that reveals an element.
const DefaultRevealThreshold = 0.12

// Reveal is the one-shot visibility latch wrapped around a page element.
//
// The element starts hidden with an observer attached. The first observation
// whose visible fraction reaches the threshold reveals it for good and
// releases the observer. Detach releases the observer without revealing,
// which is what happens when the element leaves the page.
type Reveal struct {
	threshold float64
	delay     time.Duration
	revealed  bool
	attached  bool
}

// NewReveal attaches a new latch. Thresholds outside (0, 1] fall back to the default.
func NewReveal(threshold float64, delay time.Duration) *Reveal {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	if delay < 0 {
		delay = 0
	}
	return &Reveal{threshold: threshold, delay: delay, attached: true}
}

// Threshold is the effective visible fraction.
func (r *Reveal) Threshold() float64 { return r.threshold }

// Delay is the transition delay applied once revealed.
func (r *Reveal) Delay() time.Duration { return r.delay }

// Revealed reports whether the latch has fired.
func (r *Reveal) Revealed() bool { return r.revealed }

// Attached reports whether the observer is still held.
func (r *Reveal) Attached() bool { return r.attached }

// Observe feeds one intersection notification and returns the revealed flag.
func (r *Reveal) Observe(fraction float64) bool {
	if !r.attached {
		return r.revealed
	}
	if fraction >= r.threshold {
		r.revealed = true
		r.attached = false
	}
	return r.revealed
}

// Detach releases the observer. Safe to call more than once.
func (r *Reveal) Detach() {
	r.attached = false
}

// Class is the class list of the wrapper element.
func (r *Reveal) Class(extra string) string {
	classes := []string{"reveal"}
	if r.revealed {
		classes = append(classes, "revealed")
	}
	if extra = strings.TrimSpace(extra); extra != "" {
		classes = append(classes, extra)
	}
	return strings.Join(classes, " ")
}

// Style is the inline style of the wrapper, empty without a delay.
func (r *Reveal) Style() string {
	if r.delay == 0 {
		return ""
	}
	return fmt.Sprintf("transition-delay: %dms", r.delay.Milliseconds())
}
