package render

import (
	"image"
	"image/color"

	"falling-sand/internal/core"
)

// GridView is the read-only grid surface the renderers consume.
type GridView interface {
	Size() core.Size
	Cells() []uint8
	Colors() []core.Color
}

// Background is the color drawn for empty cells.
var Background = color.RGBA{A: 255}

// FillCellsRGBA converts per-cell kinds and colors into RGBA pixels in buf.
// Cells with kind 0 are drawn with the background color.
func FillCellsRGBA(buf []byte, kinds []uint8, colors []core.Color, background color.Color) {
	rBg, gBg, bBg, aBg := background.RGBA()
	for i, k := range kinds {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if k != 0 && i < len(colors) {
			c := colors[i]
			buf[base+0] = channel(c.R)
			buf[base+1] = channel(c.G)
			buf[base+2] = channel(c.B)
			buf[base+3] = 255
			continue
		}
		buf[base+0] = uint8(rBg >> 8)
		buf[base+1] = uint8(gBg >> 8)
		buf[base+2] = uint8(bBg >> 8)
		buf[base+3] = uint8(aBg >> 8)
	}
}

// GridImage rasterizes the grid into a new RGBA image, scaling each cell to a
// scale×scale block.
func GridImage(v GridView, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	size := v.Size()
	buf := make([]byte, 4*size.W*size.H)
	FillCellsRGBA(buf, v.Cells(), v.Colors(), Background)

	img := image.NewRGBA(image.Rect(0, 0, size.W*scale, size.H*scale))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			src := (y*size.W + x) * 4
			for sy := 0; sy < scale; sy++ {
				row := (y*scale + sy) * img.Stride
				for sx := 0; sx < scale; sx++ {
					dst := row + (x*scale+sx)*4
					copy(img.Pix[dst:dst+4], buf[src:src+4])
				}
			}
		}
	}
	return img
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
