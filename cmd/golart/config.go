package main

import "flag"

// Config represents the command-line parameters for golart.
type Config struct {
	Seed       uint64
	Token      string
	Sample     int
	ConfigPath string
	Out        string
	Stats      bool
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "simulation seed (base seed for -sample)")
	fs.StringVar(&c.Token, "token", c.Token, "token id to render; its low 64 bits are the seed")
	fs.IntVar(&c.Sample, "sample", c.Sample, "render this many seeds drawn from -seed")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML or YAML file listing seeds and tokens")
	fs.StringVar(&c.Out, "out", c.Out, "output .svg file or directory (default stdout for one document)")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "print live cell counts per generation instead of SVG")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error, off)")
}
