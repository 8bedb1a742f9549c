//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the grid into a single RGBA image and draws it scaled
// to the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the grid and draws it stretched to dstW×dstH pixels. The
// backing image is reallocated when the grid has been resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, v GridView, dstW, dstH int) {
	size := v.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if size.W != gp.w || size.H != gp.h {
		gp.resize(size.W, size.H)
	}
	FillCellsRGBA(gp.buf, v.Cells(), v.Colors(), Background)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dstW)/float64(gp.w), float64(dstH)/float64(gp.h))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
