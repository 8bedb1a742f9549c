package input

import (
	"testing"

	"falling-sand/internal/core"
)

type recordingPainter struct {
	w, h    int
	painted map[[2]int]core.Color
	calls   int
}

func newRecordingPainter(w, h int) *recordingPainter {
	return &recordingPainter{w: w, h: h, painted: map[[2]int]core.Color{}}
}

func (r *recordingPainter) Paint(col, row int, color core.Color) {
	r.calls++
	if col < 0 || col >= r.w || row < 0 || row >= r.h {
		return
	}
	r.painted[[2]int{col, row}] = color
}

func TestMapPointerToGridCorners(t *testing.T) {
	cases := []struct {
		px, py   float64
		col, row int
	}{
		{0, 0, 0, 0},
		{799.9, 0, 299, 0},
		{0, 599.9, 0, 199},
		{400, 300, 150, 100},
		{800, 600, 300, 200},
		{-1, -1, -1, -1},
	}
	for _, c := range cases {
		col, row := MapPointerToGrid(c.px, c.py, 800, 600, 300, 200)
		if col != c.col || row != c.row {
			t.Errorf("MapPointerToGrid(%v,%v) = (%d,%d), expected (%d,%d)", c.px, c.py, col, row, c.col, c.row)
		}
	}
}

func TestMapPointerToGridMonotonic(t *testing.T) {
	const winW, winH = 1024.0, 768.0
	for _, grid := range [][2]int{{30, 30}, {200, 150}, {300, 200}} {
		prev := -1 << 31
		for px := -5.0; px <= winW+5; px += 0.5 {
			col, _ := MapPointerToGrid(px, 100, winW, winH, grid[0], grid[1])
			if col < prev {
				t.Fatalf("%dx%d: col decreased from %d to %d at x=%v", grid[0], grid[1], prev, col, px)
			}
			prev = col
		}
		prev = -1 << 31
		for py := -5.0; py <= winH+5; py += 0.5 {
			_, row := MapPointerToGrid(100, py, winW, winH, grid[0], grid[1])
			if row < prev {
				t.Fatalf("%dx%d: row decreased from %d to %d at y=%v", grid[0], grid[1], prev, row, py)
			}
			prev = row
		}
	}
}

func TestMapPointerToGridZeroWindow(t *testing.T) {
	col, row := MapPointerToGrid(10, 10, 0, 600, 30, 30)
	if col != -1 || row != -1 {
		t.Fatalf("zero window mapped to (%d,%d)", col, row)
	}
}

func TestBrushPaintStampsThreeByThree(t *testing.T) {
	p := newRecordingPainter(10, 10)
	c := core.Color{R: 1, G: 0.85, B: 0.55}
	BrushPaint(p, 5, 5, c)
	if p.calls != 9 || len(p.painted) != 9 {
		t.Fatalf("calls=%d painted=%d, expected 9 each", p.calls, len(p.painted))
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			got, ok := p.painted[[2]int{5 + dx, 5 + dy}]
			if !ok || got != c {
				t.Fatalf("cell (%d,%d) not painted with %+v", 5+dx, 5+dy, c)
			}
		}
	}
}

func TestBrushPaintAtCornerDefersBounds(t *testing.T) {
	p := newRecordingPainter(10, 10)
	BrushPaint(p, 0, 0, core.Color{R: 1})
	if p.calls != 9 {
		t.Fatalf("calls = %d, expected every offset forwarded", p.calls)
	}
	if len(p.painted) != 4 {
		t.Fatalf("painted %d cells at the corner, expected 4", len(p.painted))
	}
}

func TestBrushPaintFuncColorsPerCell(t *testing.T) {
	p := newRecordingPainter(4, 4)
	BrushPaintFunc(p, 1, 1, func(col, row int) core.Color {
		return core.Color{R: float32(col), G: float32(row)}
	})
	for key, got := range p.painted {
		if got.R != float32(key[0]) || got.G != float32(key[1]) {
			t.Fatalf("cell %v painted %+v", key, got)
		}
	}
}

func TestDragTracksMovement(t *testing.T) {
	var d Drag
	if d.Move(1, 1) {
		t.Fatal("move without press reported a change")
	}
	d.Press(2, 3)
	if !d.Active() || d.Moved() {
		t.Fatal("press should start an unmoved drag")
	}
	if d.Move(2, 3) {
		t.Fatal("same cell reported as a move")
	}
	if !d.Move(3, 3) || !d.Moved() {
		t.Fatal("cell change not reported")
	}
	if col, row := d.Position(); col != 3 || row != 3 {
		t.Fatalf("position = (%d,%d)", col, row)
	}
	d.Release()
	if d.Active() {
		t.Fatal("release did not end the drag")
	}
}
