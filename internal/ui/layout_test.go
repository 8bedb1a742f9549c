package ui

import (
	"image"
	"testing"
)

func TestPointInRect(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pointInRect(10, 10, r) || !pointInRect(19, 19, r) {
		t.Fatal("inner corners should hit")
	}
	if pointInRect(20, 15, r) || pointInRect(15, 9, r) {
		t.Fatal("points on or past the max edge should miss")
	}
}

func TestToolsPanelAnchorsRight(t *testing.T) {
	r := toolsPanelRect(900, 260, 1)
	if r.Min.X != 640 || r.Max.X != 900 || r.Min.Y != 0 {
		t.Fatalf("panel = %v", r)
	}
	if r.Dy() != controlsTop+lineHeight+panelPadding {
		t.Fatalf("panel height = %d", r.Dy())
	}
	if narrow := toolsPanelRect(100, 260, 1); narrow.Min.X != 0 {
		t.Fatalf("panel wider than screen should clamp to x=0, got %v", narrow)
	}
	if empty := toolsPanelRect(900, 0, 1); !empty.Empty() {
		t.Fatalf("zero-width panel = %v", empty)
	}
}

func TestControlRectsInsidePanel(t *testing.T) {
	panel := image.Rect(0, 0, 260, controlsTop+2*lineHeight+panelPadding)
	for i := 0; i < 2; i++ {
		_, minus, plus := controlRects(260, i)
		if !minus.In(panel) || !plus.In(panel) {
			t.Fatalf("control %d buttons %v %v outside %v", i, minus, plus, panel)
		}
		if minus.Overlaps(plus) {
			t.Fatalf("control %d buttons overlap", i)
		}
	}
}

func TestPerformanceRectsGrowWhileGathering(t *testing.T) {
	idle, button := performanceRects(false)
	busy, _ := performanceRects(true)
	if busy.Dy() <= idle.Dy() {
		t.Fatalf("gathering panel %v not taller than idle %v", busy, idle)
	}
	if !button.In(idle) {
		t.Fatalf("gather button %v outside idle panel %v", button, idle)
	}
	w, h := chartSize()
	if w <= 0 || h <= 0 || perfChartTop+h > busy.Dy() {
		t.Fatalf("chart %dx%d does not fit panel %v", w, h, busy)
	}
	if gatherLabel(true) == gatherLabel(false) {
		t.Fatal("gather button label must reflect state")
	}
}
