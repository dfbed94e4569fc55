package tui

import "time"

// Held emulates key-held state for terminals that only report presses. A key
// counts as down for Hold after each press; auto-repeat keeps refreshing it.
type Held struct {
	Hold time.Duration
	last map[string]time.Time
}

// NewHeld returns an empty tracker.
func NewHeld(hold time.Duration) *Held {
	return &Held{Hold: hold, last: make(map[string]time.Time)}
}

// Press records a press of key at now.
func (h *Held) Press(key string, now time.Time) {
	h.last[key] = now
}

// Down reports whether key was pressed within Hold before now.
func (h *Held) Down(key string, now time.Time) bool {
	t, ok := h.last[key]
	return ok && now.Sub(t) < h.Hold
}

// Clear forgets every key.
func (h *Held) Clear() {
	for k := range h.last {
		delete(h.last, k)
	}
}
