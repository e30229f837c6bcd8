package catalog

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// Holder keeps the catalog snapshot currently served. Snapshots are never
// mutated; a reload swaps the pointer.
type Holder struct {
	mu         sync.RWMutex
	current    *domain.Catalog
	source     string
	lastReload time.Time
	reloads    int
}

// NewHolder creates a holder serving initial.
func NewHolder(initial *domain.Catalog, source string) *Holder {
	return &Holder{
		current:    initial,
		source:     source,
		lastReload: time.Now(),
	}
}

// Current returns the snapshot being served.
func (h *Holder) Current() *domain.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.current
}

// Replace swaps in a new snapshot and reports whether its revision differs
// from the previous one.
func (h *Holder) Replace(next *domain.Catalog) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	changed := h.current == nil || h.current.Revision != next.Revision
	h.current = next
	h.lastReload = time.Now()
	h.reloads++
	return changed
}

// Revision is the revision of the current snapshot.
func (h *Holder) Revision() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return ""
	}
	return h.current.Revision
}

// Source describes where the snapshot came from ("embedded" or a file path).
func (h *Holder) Source() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.source
}

// LastReload returns the time of the last successful load.
func (h *Holder) LastReload() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.lastReload
}

// Reloads counts successful Replace calls.
func (h *Holder) Reloads() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.reloads
}
