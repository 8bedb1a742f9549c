package telemetry

// FramerateHistory is the number of framerate samples kept for the overlay.
const FramerateHistory = 90

// History is a fixed-capacity ring of samples; the oldest sample is dropped
// once the ring is full.
type History struct {
	buf   []float64
	start int
	n     int
}

// NewHistory allocates a ring holding up to capacity samples (minimum 1).
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{buf: make([]float64, capacity)}
}

// Push appends a sample.
func (h *History) Push(v float64) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = v
		h.n++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Len reports how many samples are stored.
func (h *History) Len() int { return h.n }

// Cap reports the ring capacity.
func (h *History) Cap() int { return len(h.buf) }

// Last returns the newest sample, or 0 when empty.
func (h *History) Last() float64 {
	if h.n == 0 {
		return 0
	}
	return h.buf[(h.start+h.n-1)%len(h.buf)]
}

// Values returns the samples oldest first in a new slice.
func (h *History) Values() []float64 {
	out := make([]float64, h.n)
	for i := 0; i < h.n; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

// Average returns the mean of the stored samples, or 0 when empty.
func (h *History) Average() float64 {
	if h.n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < h.n; i++ {
		sum += h.buf[(h.start+i)%len(h.buf)]
	}
	return sum / float64(h.n)
}

// Reset drops every sample.
func (h *History) Reset() {
	h.start = 0
	h.n = 0
}
