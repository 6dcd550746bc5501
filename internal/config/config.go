// Package config loads batch and viewer settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"golart/pkg/token"
)

// Viewer holds settings for the interactive viewer.
type Viewer struct {
	Scale    int    `toml:"scale" yaml:"scale"`
	TPS      int    `toml:"tps" yaml:"tps"`
	PeriodMS int    `toml:"period_ms" yaml:"period_ms"`
	OnColor  string `toml:"on_color" yaml:"on_color"`
	OffColor string `toml:"off_color" yaml:"off_color"`
}

// Config is the file configuration shared by the commands.
type Config struct {
	Seeds     []uint64 `toml:"seeds" yaml:"seeds"`
	Tokens    []string `toml:"tokens" yaml:"tokens"`
	OutputDir string   `toml:"output_dir" yaml:"output_dir"`
	LogLevel  string   `toml:"log_level" yaml:"log_level"`
	Viewer    Viewer   `toml:"viewer" yaml:"viewer"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir: ".",
		LogLevel:  "info",
		Viewer: Viewer{
			Scale:    16,
			TPS:      60,
			PeriodMS: 400,
			OnColor:  "#000000",
			OffColor: "#ffffff",
		},
	}
}

// Load reads path, overlaying the keys it defines onto Default. The format is
// chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = loadTOML(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unsupported extension", path)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func loadTOML(path string) (Config, error) {
	cfg := Default()
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if meta.IsDefined("seeds") {
		cfg.Seeds = raw.Seeds
	}
	if meta.IsDefined("tokens") {
		cfg.Tokens = raw.Tokens
	}
	if meta.IsDefined("output_dir") {
		cfg.OutputDir = strings.TrimSpace(raw.OutputDir)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("viewer", "scale") {
		cfg.Viewer.Scale = raw.Viewer.Scale
	}
	if meta.IsDefined("viewer", "tps") {
		cfg.Viewer.TPS = raw.Viewer.TPS
	}
	if meta.IsDefined("viewer", "period_ms") {
		cfg.Viewer.PeriodMS = raw.Viewer.PeriodMS
	}
	if meta.IsDefined("viewer", "on_color") {
		cfg.Viewer.OnColor = strings.TrimSpace(raw.Viewer.OnColor)
	}
	if meta.IsDefined("viewer", "off_color") {
		cfg.Viewer.OffColor = strings.TrimSpace(raw.Viewer.OffColor)
	}
	return cfg, nil
}

func loadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	// Decoding into the defaults keeps every key the file leaves out.
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges, colours and token ids.
func (c Config) Validate() error {
	if c.Viewer.Scale <= 0 {
		return fmt.Errorf("viewer.scale must be positive, got %d", c.Viewer.Scale)
	}
	if c.Viewer.TPS <= 0 {
		return fmt.Errorf("viewer.tps must be positive, got %d", c.Viewer.TPS)
	}
	if c.Viewer.PeriodMS <= 0 {
		return fmt.Errorf("viewer.period_ms must be positive, got %d", c.Viewer.PeriodMS)
	}
	if _, err := colorful.Hex(c.Viewer.OnColor); err != nil {
		return fmt.Errorf("viewer.on_color %q: %w", c.Viewer.OnColor, err)
	}
	if _, err := colorful.Hex(c.Viewer.OffColor); err != nil {
		return fmt.Errorf("viewer.off_color %q: %w", c.Viewer.OffColor, err)
	}
	for _, raw := range c.Tokens {
		if _, err := token.ParseID(raw); err != nil {
			return err
		}
	}
	return nil
}

// TokenSeeds resolves the configured token ids to simulation seeds.
func (c Config) TokenSeeds() ([]uint64, error) {
	out := make([]uint64, 0, len(c.Tokens))
	for _, raw := range c.Tokens {
		id, err := token.ParseID(raw)
		if err != nil {
			return nil, err
		}
		seed, err := token.SeedFromID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, seed)
	}
	return out, nil
}

// Colors parses the viewer colours.
func (v Viewer) Colors() (on, off colorful.Color, err error) {
	if on, err = colorful.Hex(v.OnColor); err != nil {
		return on, off, fmt.Errorf("viewer.on_color %q: %w", v.OnColor, err)
	}
	if off, err = colorful.Hex(v.OffColor); err != nil {
		return on, off, fmt.Errorf("viewer.off_color %q: %w", v.OffColor, err)
	}
	return on, off, nil
}
