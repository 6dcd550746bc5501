//go:build ebiten

// Command golview plays the generations behind a token's artwork.
package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"golart/internal/app"
	"golart/internal/config"
	"golart/internal/logging"
	"golart/internal/ui"
	"golart/pkg/art"
	"golart/pkg/sims/life"
	"golart/pkg/token"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	file := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := config.Load(cfg.ConfigPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
		file = loaded
	}
	logger := logging.Init("golview", logging.Options{Level: file.LogLevel})

	viewer := file.Viewer
	if cfg.Scale > 0 {
		viewer.Scale = cfg.Scale
	}
	if cfg.TPS > 0 {
		viewer.TPS = cfg.TPS
	}
	period := time.Duration(viewer.PeriodMS) * time.Millisecond
	if cfg.Period > 0 {
		period = cfg.Period
	}
	on, off, err := viewer.Colors()
	if err != nil {
		logger.Fatal().Err(err).Msg("viewer colours")
	}

	seed := cfg.Seed
	if cfg.Token != "" {
		id, err := token.ParseID(cfg.Token)
		if err == nil {
			seed, err = token.SeedFromID(id)
		}
		if err != nil {
			logger.Fatal().Err(err).Msg("token id")
		}
	}

	sim := life.New(art.Side, art.Generations)
	game := app.New(sim, app.Options{
		Scale:       viewer.Scale,
		Generations: sim.Generations(),
		Period:      period,
		OnColor:     on,
		OffColor:    off,
		Logger:      logger,
	})
	game.Reset(seed)

	side := sim.Side() * viewer.Scale
	ebiten.SetWindowTitle(fmt.Sprintf("golview — seed %d", seed))
	ebiten.SetTPS(viewer.TPS)
	ebiten.SetWindowSize(side, side+ui.HUDHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("viewer stopped")
	}
}
