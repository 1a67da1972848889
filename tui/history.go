// Package tui provides a Bubble Tea terminal UI for the dungeon engine.
package tui

// History keeps recently entered commands for up/down recall.
type History struct {
	entries []string
	max     int
	cursor  int // -1 when not browsing
}

// NewHistory creates a history buffer holding at most max entries.
func NewHistory(max int) *History {
	return &History{max: max, cursor: -1}
}

// Push records a command. A repeat of the newest entry is dropped.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.max]
	}
}

// Prev steps back toward older entries. It reports false when empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor < 0:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward toward newer entries. Past the newest it reports
// false and leaves browsing mode.
func (h *History) Next() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor leaves browsing mode.
func (h *History) ResetCursor() {
	h.cursor = -1
}
