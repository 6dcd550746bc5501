//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golart/pkg/core"
)

// GridPainter updates a single RGBA image from a grid.
type GridPainter struct {
	side int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a side*side grid.
func NewGridPainter(side int) *GridPainter {
	gp := &GridPainter{side: side, buf: make([]byte, 4*side*side)}
	gp.img = ebiten.NewImage(side, side)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g == nil || g.Side() != gp.side {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Side returns the grid side the painter was built for.
func (gp *GridPainter) Side() int { return gp.side }
