package life

import (
	"golart/pkg/core"
)

// Rule applies B3/S23: live cells survive with two or three neighbours, dead
// cells are born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Neighbors counts the live cells among the eight toroidal neighbours of (x, y).
func Neighbors(g *core.Grid, x, y int) int {
	side := g.Side()
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + side) % side
			ny := (y + dy + side) % side
			if cells[ny*side+nx] {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation into a fresh grid. The input grid is
// only read, so every cell sees the same snapshot.
func Next(g *core.Grid) *core.Grid {
	side := g.Side()
	next := core.NewGrid(side)
	cur, nxt := g.Cells(), next.Cells()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			idx := y*side + x
			nxt[idx] = Rule(cur[idx], Neighbors(g, x, y))
		}
	}
	return next
}

// Life implements Conway's Game of Life with toroidal wrapping over a bounded
// number of generations.
type Life struct {
	side        int
	generations int
	seed        uint64
	gen         int
	cur         *core.Grid
}

// New returns a Life simulation with the provided side and generation count,
// seeded with zero.
func New(side, generations int) *Life {
	if generations < 1 {
		generations = 1
	}
	l := &Life{side: side, generations: generations}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Side returns the grid side length.
func (l *Life) Side() int { return l.side }

// Seed returns the seed used by the last Reset.
func (l *Life) Seed() uint64 { return l.seed }

// Generation returns the index of the current generation.
func (l *Life) Generation() int { return l.gen }

// Generations returns the total number of generations in a run.
func (l *Life) Generations() int { return l.generations }

// Grid exposes the current generation. Callers must not modify it.
func (l *Life) Grid() *core.Grid { return l.cur }

// Reset rebuilds generation zero from the provided seed.
func (l *Life) Reset(seed uint64) {
	l.seed = seed
	l.gen = 0
	l.cur = Seed(seed, l.side)
}

// Step advances by one generation. It reports false without changing state
// once the terminal generation has been reached.
func (l *Life) Step() bool {
	if l.gen >= l.generations-1 {
		return false
	}
	l.cur = Next(l.cur)
	l.gen++
	return true
}

var _ core.Sim = (*Life)(nil)
