// Package input turns pointer positions into grid coordinates and applies
// brush strokes through a Painter.
package input

import (
	"math"

	"falling-sand/internal/core"
)

// BrushRadius is the half-width of the drag brush; radius 1 gives a 3×3 stamp.
const BrushRadius = 1

// Painter is the mutation surface a brush stroke writes through. Paint must
// ignore coordinates outside the grid.
type Painter interface {
	Paint(col, row int, color core.Color)
}

// MapPointerToGrid converts a pixel position inside a window into grid
// coordinates. The pixel is first normalized to device space ([-1,1] on both
// axes, y pointing up) and then mapped onto the grid with row 0 at the top.
//
// The result is not clamped; positions on or past the window edge may land
// one cell outside the grid. A zero-sized window maps to (-1, -1).
func MapPointerToGrid(pixelX, pixelY, windowWidth, windowHeight float64, gridWidth, gridHeight int) (int, int) {
	if windowWidth <= 0 || windowHeight <= 0 {
		return -1, -1
	}
	normX := (pixelX/windowWidth)*2 - 1
	normY := 1 - (pixelY/windowHeight)*2
	col := int(math.Floor((normX + 1) * 0.5 * float64(gridWidth)))
	row := int(math.Floor((1 - normY) * 0.5 * float64(gridHeight)))
	return col, row
}

// BrushPaint paints the square neighborhood of (centerCol, centerRow). Cells
// falling outside the grid are left to the painter's own bounds check.
func BrushPaint(p Painter, centerCol, centerRow int, color core.Color) {
	for dy := -BrushRadius; dy <= BrushRadius; dy++ {
		for dx := -BrushRadius; dx <= BrushRadius; dx++ {
			p.Paint(centerCol+dx, centerRow+dy, color)
		}
	}
}

// ColorFunc picks a color for a single painted cell.
type ColorFunc func(col, row int) core.Color

// BrushPaintFunc is BrushPaint with a per-cell color.
func BrushPaintFunc(p Painter, centerCol, centerRow int, color ColorFunc) {
	for dy := -BrushRadius; dy <= BrushRadius; dy++ {
		for dx := -BrushRadius; dx <= BrushRadius; dx++ {
			col, row := centerCol+dx, centerRow+dy
			p.Paint(col, row, color(col, row))
		}
	}
}
