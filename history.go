package editline

import "strings"

// History is a fixed-capacity ring of committed lines with a scroll view
// over them. Scrolling back stashes the line that was being edited so it
// can be restored when the user scrolls forward past the newest entry.
type History struct {
	entries     []string
	capacity    int
	writeCursor int // slot of the most recently written entry
	viewCursor  int // slot currently displayed, -1 when viewing the live line
	saved       string
	hasSaved    bool
}

// NewHistory returns an empty history holding at most capacity entries.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		entries:    make([]string, 0, capacity),
		capacity:   capacity,
		viewCursor: -1,
	}
}

// Len reports the number of entries currently stored.
func (h *History) Len() int { return len(h.entries) }

// Capacity reports the fixed entry limit set at construction.
func (h *History) Capacity() int { return h.capacity }

// Add commits a line. The line is trimmed first; empty lines and lines
// equal to the most recently committed entry are dropped. At capacity the
// oldest entry is overwritten.
func (h *History) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[h.writeCursor] == line {
		return
	}

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, line)
		h.writeCursor = len(h.entries) - 1
	} else {
		h.writeCursor = (h.writeCursor + 1) % h.capacity
		h.entries[h.writeCursor] = line
	}

	h.viewCursor = -1
	h.hasSaved = false
	h.saved = ""
}

// Previous scrolls one entry back and returns it. The first call of a
// scroll session stashes current, the caller's in-progress line, so that
// NextEntry can hand it back later. Returns false without changing state
// once the oldest surviving entry is already displayed.
func (h *History) Previous(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	if h.viewCursor < 0 {
		h.saved = current
		h.hasSaved = true
		h.viewCursor = h.writeCursor
		return h.entries[h.viewCursor], true
	}

	if len(h.entries) < h.capacity {
		if h.viewCursor == 0 {
			return "", false
		}
		h.viewCursor--
		return h.entries[h.viewCursor], true
	}

	// Full ring: the oldest entry lives just after the write cursor, so
	// stepping back onto the write cursor would wrap onto overwritten slots.
	prev := (h.viewCursor + h.capacity - 1) % h.capacity
	if prev == h.writeCursor {
		return "", false
	}
	h.viewCursor = prev
	return h.entries[prev], true
}

// NextEntry scrolls one entry forward. Walking past the newest entry ends
// the scroll session and returns the stashed live line, exactly once;
// with no session active it returns false unconditionally.
func (h *History) NextEntry() (string, bool) {
	if h.viewCursor < 0 {
		return "", false
	}

	if len(h.entries) < h.capacity {
		if next := h.viewCursor + 1; next < len(h.entries) {
			h.viewCursor = next
			return h.entries[next], true
		}
	} else {
		next := (h.viewCursor + 1) % h.capacity
		if next != (h.writeCursor+1)%h.capacity {
			h.viewCursor = next
			return h.entries[next], true
		}
	}

	h.viewCursor = -1
	if h.hasSaved {
		h.hasSaved = false
		return h.saved, true
	}
	return "", false
}

// ResetView ends any scroll session, returning the view to the live line.
func (h *History) ResetView() {
	h.viewCursor = -1
}
