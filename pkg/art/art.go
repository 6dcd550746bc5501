// Package art produces the token artwork: a 32x32 toroidal Game of Life run
// for 64 generations and drawn as one animated 128x128 SVG.
package art

import (
	"golart/pkg/core"
	"golart/pkg/render/svg"
	"golart/pkg/sims/life"
)

const (
	Side        = 32
	Generations = 64
	CellSize    = 4
	ViewBox     = Side * CellSize
)

// Options returns the fixed document geometry.
func Options() svg.Options {
	return svg.Options{Side: Side, Generations: Generations, CellSize: CellSize, ViewBox: ViewBox}
}

// Render returns the complete SVG document for seed.
func Render(seed uint64) string {
	return svg.Animate(life.Seed(seed, Side), life.Next, Options())
}

// History returns every generation of the run for seed, generation zero first.
func History(seed uint64) []*core.Grid {
	out := make([]*core.Grid, 0, Generations)
	cur := life.Seed(seed, Side)
	out = append(out, cur)
	for gen := 1; gen < Generations; gen++ {
		cur = life.Next(cur)
		out = append(out, cur)
	}
	return out
}

// LiveCounts returns the number of live cells in each generation for seed.
func LiveCounts(seed uint64) []int {
	hist := History(seed)
	counts := make([]int, len(hist))
	for i, g := range hist {
		counts[i] = g.Live()
	}
	return counts
}
