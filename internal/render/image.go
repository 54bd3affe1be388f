package render

import (
	"image"
	"image/color"

	"sierpinski/internal/core"
)

const (
	offIndex = 0
	onIndex  = 1
)

// Image paints v into a two-color paletted image, each cell covering a
// scale x scale block. Generation 0 is the top row.
func Image(v core.View, scale int, c Colors) *image.Paletted {
	if scale <= 0 {
		scale = 1
	}
	size := v.Size()
	cells := v.Cells()
	img := image.NewPaletted(image.Rect(0, 0, size.W*scale, size.H*scale), color.Palette{c.Off, c.On})
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for py := y * scale; py < (y+1)*scale; py++ {
			line := img.Pix[py*img.Stride : py*img.Stride+size.W*scale]
			for x, cell := range row {
				idx := uint8(offIndex)
				if cell != 0 {
					idx = onIndex
				}
				for px := x * scale; px < (x+1)*scale; px++ {
					line[px] = idx
				}
			}
		}
	}
	return img
}
