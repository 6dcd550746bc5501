package core

import (
	"fmt"
	"strings"
)

// Grid stores a square board of live/dead cells in row-major order. The side
// length is always a power of two.
type Grid struct {
	side  int
	cells []bool
}

// NewGrid allocates an empty grid. It panics when side is not a positive power
// of two.
func NewGrid(side int) *Grid {
	if !IsPowerOfTwo(side) {
		panic(fmt.Sprintf("core: grid side %d is not a power of two", side))
	}
	return &Grid{side: side, cells: make([]bool, side*side)}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Side returns the grid side length.
func (g *Grid) Side() int { return g.side }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.side + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.side + g.side) % g.side
	y = (y%g.side + g.side) % g.side
	return x, y
}

// At reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) At(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.cells[g.Index(x, y)]
}

// Set updates the cell at (x, y). Coordinates wrap.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	g.cells[g.Index(x, y)] = alive
}

// Live counts the live cells.
func (g *Grid) Live() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same side and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.side != o.side {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as newline separated rows of '#' (alive) and '.'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.side * (g.side + 1))
	for y := 0; y < g.side; y++ {
		for x := 0; x < g.side; x++ {
			if g.cells[g.Index(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid builds a grid from the format produced by String. Blank lines and
// surrounding whitespace are ignored.
func ParseGrid(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	side := len(rows)
	if !IsPowerOfTwo(side) {
		return nil, fmt.Errorf("parse grid: %d rows is not a power of two", side)
	}
	g := NewGrid(side)
	for y, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d", y, len(row), side)
		}
		for x := 0; x < side; x++ {
			switch row[x] {
			case '#':
				g.cells[g.Index(x, y)] = true
			case '.':
			default:
				return nil, fmt.Errorf("parse grid: row %d col %d: unexpected %q", y, x, row[x])
			}
		}
	}
	return g, nil
}
