package tennis

// DefaultHistoryCapacity is the number of undo steps kept by a new match.
const DefaultHistoryCapacity = 50

// History is a fixed-capacity ring buffer of snapshots.
// Pushing onto a full buffer drops the oldest entry.
type History struct {
	buf   []Snapshot
	start int // Index of the oldest entry
	count int
}

// NewHistory creates an empty history holding at most capacity snapshots.
// A non-positive capacity falls back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		buf: make([]Snapshot, capacity),
	}
}

// Cap returns the maximum number of retained snapshots.
func (h *History) Cap() int {
	return len(h.buf)
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return h.count
}

// Push appends a snapshot, evicting the oldest one when full.
func (h *History) Push(s Snapshot) {
	if h.count == len(h.buf) {
		h.buf[h.start] = s
		h.start = (h.start + 1) % len(h.buf)
		return
	}
	h.buf[(h.start+h.count)%len(h.buf)] = s
	h.count++
}

// Pop removes and returns the most recent snapshot.
// Returns false if the history is empty.
func (h *History) Pop() (Snapshot, bool) {
	if h.count == 0 {
		return Snapshot{}, false
	}
	h.count--
	idx := (h.start + h.count) % len(h.buf)
	s := h.buf[idx]
	h.buf[idx] = Snapshot{}
	return s, true
}

// Peek returns the most recent snapshot without removing it.
func (h *History) Peek() (Snapshot, bool) {
	if h.count == 0 {
		return Snapshot{}, false
	}
	return h.buf[(h.start+h.count-1)%len(h.buf)], true
}

// Clear drops all snapshots.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = Snapshot{}
	}
	h.start = 0
	h.count = 0
}
