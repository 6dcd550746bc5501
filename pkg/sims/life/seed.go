package life

import "golart/pkg/core"

// Seed derives the initial generation for the given seed. A cell (x, y) is
// alive when ((x^y) + ((x|y)&(side-1)) + seed) & (side-1) is below side/3.
// Equal seeds always produce identical grids.
func Seed(seed uint64, side int) *core.Grid {
	g := core.NewGrid(side)
	mask := uint64(side - 1)
	threshold := uint64(side / 3)
	cells := g.Cells()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			ux, uy := uint64(x), uint64(y)
			v := ((ux ^ uy) + ((ux | uy) & mask) + seed) & mask
			cells[g.Index(x, y)] = v < threshold
		}
	}
	return g
}
