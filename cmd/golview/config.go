//go:build ebiten

package main

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Seed       uint64
	Token      string
	ConfigPath string
	Scale      int
	TPS        int
	Period     time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 10}
}

// Bind attaches the configuration to the provided FlagSet. Zero values for
// scale, tps and period defer to the config file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "simulation seed")
	fs.StringVar(&c.Token, "token", c.Token, "token id to view; overrides -seed")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML or YAML file with a [viewer] section")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
}
