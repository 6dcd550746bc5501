// Command golart renders Game of Life token artwork as animated SVG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"golart/internal/config"
	"golart/internal/logging"
	"golart/pkg/art"
	"golart/pkg/core"
	"golart/pkg/token"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "golart:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := NewConfig()
	fs := flag.NewFlagSet("golart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	file := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return err
		}
		file = loaded
	}
	level := file.LogLevel
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	logger := logging.Init("golart", logging.Options{Level: level, Out: stderr})

	seeds, err := resolveSeeds(cfg, file)
	if err != nil {
		return err
	}
	if cfg.Stats {
		return writeStats(stdout, seeds)
	}

	if len(seeds) == 1 && (cfg.Out == "" || strings.EqualFold(filepath.Ext(cfg.Out), ".svg")) {
		return renderOne(logger, stdout, seeds[0], cfg.Out)
	}

	dir := cfg.Out
	if dir == "" {
		dir = file.OutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, seed := range seeds {
		if err := renderOne(logger, stdout, seed, filepath.Join(dir, fileName(seed))); err != nil {
			return err
		}
	}
	return nil
}

func resolveSeeds(cfg *Config, file config.Config) ([]uint64, error) {
	var seeds []uint64
	if cfg.ConfigPath != "" {
		seeds = append(seeds, file.Seeds...)
		tokenSeeds, err := file.TokenSeeds()
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, tokenSeeds...)
	}
	if cfg.Token != "" {
		id, err := token.ParseID(cfg.Token)
		if err != nil {
			return nil, err
		}
		seed, err := token.SeedFromID(id)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	if cfg.Sample > 0 {
		seeds = append(seeds, core.NewRNG(cfg.Seed).Seeds(cfg.Sample)...)
	}
	if len(seeds) == 0 {
		if cfg.ConfigPath != "" {
			return nil, fmt.Errorf("config %s lists no seeds or tokens", cfg.ConfigPath)
		}
		seeds = append(seeds, cfg.Seed)
	}
	return seeds, nil
}

func fileName(seed uint64) string {
	return fmt.Sprintf("gol-%d.svg", seed)
}

func renderOne(logger zerolog.Logger, stdout io.Writer, seed uint64, path string) error {
	doc := art.Render(seed)
	ev := logger.Info().Uint64("seed", seed).Int("bytes", len(doc)).Int("rects", strings.Count(doc, "<rect "))
	if path == "" {
		if _, err := io.WriteString(stdout, doc); err != nil {
			return fmt.Errorf("write seed %d: %w", seed, err)
		}
		ev.Msg("rendered")
		return nil
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	ev.Str("path", path).Msg("rendered")
	return nil
}

func writeStats(w io.Writer, seeds []uint64) error {
	for _, seed := range seeds {
		counts := art.LiveCounts(seed)
		total := 0
		for gen, n := range counts {
			total += n
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\n", seed, gen, n); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d\ttotal\t%d\n", seed, total); err != nil {
			return err
		}
	}
	return nil
}
