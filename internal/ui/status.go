package ui

import (
	"fmt"

	"golart/pkg/core"
	"golart/pkg/sims/life"
)

// Status formats the one-line HUD summary for sim.
func Status(sim core.Sim, generations int, paused bool) string {
	if sim == nil {
		return ""
	}
	state := ""
	if paused {
		state = "  [paused]"
	}
	g := sim.Grid()
	return fmt.Sprintf("seed %d  gen %d/%d  live %d%s", sim.Seed(), sim.Generation(), generations-1, g.Live(), state)
}

// Change marks how a cell differs between two generations.
type Change uint8

const (
	Unchanged Change = iota
	Born
	Dies
)

// Changes classifies every cell of cur by what the next generation does to it.
func Changes(cur *core.Grid) []Change {
	next := life.Next(cur)
	a, b := cur.Cells(), next.Cells()
	out := make([]Change, len(a))
	for i := range a {
		switch {
		case !a[i] && b[i]:
			out[i] = Born
		case a[i] && !b[i]:
			out[i] = Dies
		}
	}
	return out
}
