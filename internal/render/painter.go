//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"sierpinski/internal/core"
)

// GridPainter holds a finished grid as a single image and draws the first
// rows of it. The grid is uploaded once since it never changes.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter uploads v into an image painted with c.
func NewGridPainter(v core.View, c Colors) *GridPainter {
	size := v.Size()
	buf := make([]byte, 4*size.W*size.H)
	fillBinaryRGBA(buf, v.Cells(), c)
	gp := &GridPainter{w: size.W, h: size.H, img: ebiten.NewImage(size.W, size.H)}
	gp.img.WritePixels(buf)
	return gp
}

// Blit draws generations [0, rows) onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, rows, scale int) {
	rows = min(max(rows, 0), gp.h)
	if rows == 0 {
		return
	}
	src := gp.img.SubImage(image.Rect(0, 0, gp.w, rows)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(src, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
