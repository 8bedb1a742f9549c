package sand

import (
	"errors"
	"fmt"

	"falling-sand/internal/core"
)

// Kind enumerates what occupies a cell.
type Kind uint8

const (
	Empty Kind = iota
	Granular
)

// Cell is a value type; cells have no identity beyond their grid position.
type Cell struct {
	Kind  Kind
	Color core.Color
}

// ErrInvalidSize is returned by Resize for non-positive dimensions.
var ErrInvalidSize = errors.New("sand: grid dimensions must be positive")

// World owns the cell grid and applies one gravity update per Step.
type World struct {
	cfg Config

	w, h  int
	cells []Cell
	moved *core.Mask

	display []uint8
	colors  []core.Color

	ticks uint64
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options.
// Non-positive dimensions are clamped to 1.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	w := &World{cfg: cfg, moved: core.NewMask(cfg.Width, cfg.Height)}
	w.allocate(cfg.Width, cfg.Height)
	return w
}

func (w *World) allocate(width, height int) {
	total := width * height
	w.w, w.h = width, height
	w.cells = make([]Cell, total)
	w.display = make([]uint8, total)
	w.colors = make([]core.Color, total)
	w.moved.Resize(width, height)
	w.cfg.Width, w.cfg.Height = width, height
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Ticks reports how many steps have run since the last Reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Reset clears every cell to Empty. The seed is unused; the grid always
// starts empty.
func (w *World) Reset(seed int64) {
	w.Clear()
	w.ticks = 0
}

// Clear empties the grid without changing its dimensions.
func (w *World) Clear() {
	for i := range w.cells {
		w.cells[i] = Cell{}
	}
}

// Resize reallocates the grid to the new dimensions with every cell Empty.
// Existing content is not preserved. Non-positive dimensions are rejected
// with ErrInvalidSize and leave the grid untouched.
func (w *World) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	w.allocate(width, height)
	return nil
}

// Cell returns the cell at (col, row) and whether the coordinates are in range.
func (w *World) Cell(col, row int) (Cell, bool) {
	if !w.inBounds(col, row) {
		return Cell{}, false
	}
	return w.cells[row*w.w+col], true
}

// Paint fills (col, row) with granular material of the given color.
// Out-of-range coordinates are ignored.
func (w *World) Paint(col, row int, color core.Color) {
	if !w.inBounds(col, row) {
		return
	}
	w.cells[row*w.w+col] = Cell{Kind: Granular, Color: color}
}

// Erase empties (col, row) and zeroes its color. Out-of-range coordinates are
// ignored.
func (w *World) Erase(col, row int) {
	if !w.inBounds(col, row) {
		return
	}
	w.cells[row*w.w+col] = Cell{}
}

// Count returns the number of granular cells.
func (w *World) Count() int {
	n := 0
	for _, c := range w.cells {
		if c.Kind == Granular {
			n++
		}
	}
	return n
}

// Cells exposes the per-cell kind as a display buffer for palette renderers.
func (w *World) Cells() []uint8 {
	for i, c := range w.cells {
		w.display[i] = uint8(c.Kind)
	}
	return w.display
}

// Colors exposes the per-cell colors in row-major order. Empty cells carry the
// zero color.
func (w *World) Colors() []core.Color {
	for i, c := range w.cells {
		w.colors[i] = c.Color
	}
	return w.colors
}

// Step advances the simulation by one tick.
//
// Rows are scanned bottom-up from H-2 and columns left to right. A granular
// cell falls straight down when the cell below is empty; when the cell below
// is granular it tries the left diagonal, then the right. Every destination is
// marked so nothing moves twice in the same tick.
func (w *World) Step() {
	w.moved.Clear()
	width := w.w
	for y := w.h - 2; y >= 0; y-- {
		for x := 0; x < width; x++ {
			if w.moved.Get(x, y) {
				continue
			}
			idx := y*width + x
			if w.cells[idx].Kind != Granular {
				continue
			}
			below := idx + width
			if w.cells[below].Kind == Empty && !w.moved.Get(x, y+1) {
				w.swap(idx, below)
				w.moved.Set(x, y+1)
				continue
			}
			if w.cells[below].Kind != Granular {
				continue
			}
			if x > 0 && w.tryMove(idx, x-1, y+1) {
				continue
			}
			if x < width-1 {
				w.tryMove(idx, x+1, y+1)
			}
		}
	}
	w.ticks++
}

func (w *World) tryMove(src, x, y int) bool {
	dst := y*w.w + x
	if w.cells[dst].Kind != Empty || w.moved.Get(x, y) {
		return false
	}
	w.swap(src, dst)
	w.moved.Set(x, y)
	return true
}

func (w *World) swap(a, b int) {
	w.cells[a], w.cells[b] = w.cells[b], w.cells[a]
}

func (w *World) inBounds(col, row int) bool {
	return col >= 0 && col < w.w && row >= 0 && row < w.h
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
