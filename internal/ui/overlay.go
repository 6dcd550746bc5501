//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golart/pkg/core"
)

var (
	bornTint = color.RGBA{R: 40, G: 200, B: 90, A: 160}
	diesTint = color.RGBA{R: 220, G: 60, B: 50, A: 160}
)

// Overlay tints the cells that change in the next generation. Key D toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	img   *ebiten.Image
	buf   []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	side := sim.Side()
	return &Overlay{
		sim:   sim,
		scale: scale,
		img:   ebiten.NewImage(side, side),
		buf:   make([]byte, 4*side*side),
	}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the change tint when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	for i, c := range Changes(o.sim.Grid()) {
		var tint color.RGBA
		switch c {
		case Born:
			tint = bornTint
		case Dies:
			tint = diesTint
		}
		base := i * 4
		// WritePixels expects premultiplied alpha.
		o.buf[base+0] = uint8(uint16(tint.R) * uint16(tint.A) / 255)
		o.buf[base+1] = uint8(uint16(tint.G) * uint16(tint.A) / 255)
		o.buf[base+2] = uint8(uint16(tint.B) * uint16(tint.A) / 255)
		o.buf[base+3] = tint.A
	}
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
