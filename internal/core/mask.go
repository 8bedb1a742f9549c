package core

// Mask is a reusable 2D boolean scratch buffer stored in row-major order.
type Mask struct {
	W, H int
	data []bool
}

// NewMask allocates a mask with the given dimensions. Non-positive sizes are
// clamped to 1.
func NewMask(w, h int) *Mask {
	m := &Mask{}
	m.Resize(w, h)
	return m
}

// Resize changes the mask dimensions and clears every entry. The backing slice
// is reused when it is large enough.
func (m *Mask) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	m.W, m.H = w, h
	total := w * h
	if cap(m.data) < total {
		m.data = make([]bool, total)
		return
	}
	m.data = m.data[:total]
	m.Clear()
}

// Index returns the linear slice index for coordinates (x, y).
func (m *Mask) Index(x, y int) int { return y*m.W + x }

// Get reports whether (x, y) is marked. Out-of-range coordinates read as unmarked.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.data[y*m.W+x]
}

// Set marks (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.data[y*m.W+x] = true
}

// Clear unmarks every entry.
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = false
	}
}

// Count returns the number of marked entries.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}
