//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"golart/internal/render"
	"golart/internal/ui"
	"golart/pkg/core"
)

// holdPeriods is how many periods the terminal generation stays on screen
// before the run restarts.
const holdPeriods = 3

// Options configures the viewer.
type Options struct {
	Scale       int
	Generations int
	Period      time.Duration
	OnColor     color.Color
	OffColor    color.Color
	Logger      zerolog.Logger
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep
	rng     *core.RNG
	log     zerolog.Logger

	onColor  color.Color
	offColor color.Color

	scale       int
	generations int
	paused      bool
	tickOnce    bool
	held        int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	if opts.OnColor == nil {
		opts.OnColor = color.Black
	}
	if opts.OffColor == nil {
		opts.OffColor = color.White
	}
	return &Game{
		sim:         sim,
		painter:     render.NewGridPainter(sim.Side()),
		hud:         ui.NewHUD(sim, opts.Generations),
		overlay:     ui.NewOverlay(sim, opts.Scale),
		clock:       core.NewFixedStep(opts.Period),
		rng:         core.NewRNG(uint64(time.Now().UnixNano())),
		log:         opts.Logger,
		onColor:     opts.OnColor,
		offColor:    opts.OffColor,
		scale:       opts.Scale,
		generations: opts.Generations,
	}
}

// Reset restarts the run with the provided seed.
func (g *Game) Reset(seed uint64) {
	g.sim.Reset(seed)
	g.tickOnce = false
	g.held = 0
	g.log.Debug().Uint64("seed", seed).Msg("viewer reset")
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sim.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.rng.Seed())
	}

	g.overlay.Update()

	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		if !g.sim.Step() {
			g.held++
			if g.held >= holdPeriods {
				g.Reset(g.sim.Seed())
			}
		}
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	side := g.sim.Side() * g.scale
	g.hud.Draw(screen, side, side)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.sim.Side() * g.scale
	return side, side + ui.HUDHeight
}
