//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"golart/pkg/core"
)

// HUDHeight is the height in pixels of the status bar below the board.
const HUDHeight = 20

// HUD renders a status bar under the simulation view.
type HUD struct {
	sim         core.Sim
	generations int
	panel       *ebiten.Image
	line        string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, generations int) *HUD {
	return &HUD{sim: sim, generations: generations}
}

// Update refreshes the cached status line.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.line = Status(h.sim, h.generations, paused)
}

// Draw paints the status bar at offsetY with the given width.
func (h *HUD) Draw(screen *ebiten.Image, offsetY, width int) {
	if h == nil || width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, HUDHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.line, basicfont.Face7x13, 4, 14, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
