package life

import (
	"math"
	"testing"

	"golart/pkg/core"
)

// Generation zero for seed 10 on a 32x32 board, and the generation derived
// from it by applying the rule to every cell.
const seed10Gen0 = `
...........#####...........#####
..........#.####..........#.####
.........#..####.........#..####
........#...####........#...####
........####.###........####.###
........#####.##........#####.##
........########........########
........########........########
...#####.......#...#####.......#
..#.####......#...#.####......#.
.#..####.....#...#..####.....#..
#...####....#...#...####....#...
####.###...#....####.###...#....
#####.##..#.....#####.##..#.....
########.#......########.#......
#########.......#########.......
...........#####...#####........
..........#.####..#.####........
.........#..####.#..####........
........#...#####...####........
........####.#######.###........
........#####.#######.##........
........################........
........################........
...#####.......#........####....
..#.####......#.........####....
.#..####.....#..........####....
#...####....#...........####....
####.###...#................##..
#####.##..#.................##..
########.#....................#.
#########......................#
`

const seed10Gen1 = `
.#######...#...#...........#....
#.........#.....#.........#.....
#........#......#........#......
#.......#.......#.......#.......
#......#........#......#........
#......#........#......#........
#......#........#......#........
#...###.........#...###.........
...#.....####..#...#.....####..#
..#.....#.....#...#.....#.....#.
.#......#....#...#......#....#..
#.......#...#...#.......#...#...
........#..#...#........#..#...#
..........#....#..........#....#
.........#.....#.........#.....#
#.......#...###.................
.#######...#....................
..........#.......#.....#.......
.........#.......#......#.......
........#...............#.......
.......#................#.......
.......#................#.......
.......#................#.......
....###..................##.....
...#.....####....######....#....
..#.....#.....#........#....#...
.#......#....#.........#....#...
#.......#...#...........#.......
........#..#.............##..#.#
..........#.................#.#.
.........#...................##.
........#...###.............#...
`

func mustParse(t *testing.T, s string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(s)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return g
}

func TestSeedGoldenGeneration(t *testing.T) {
	got := Seed(10, 32)
	want := mustParse(t, seed10Gen0)
	if !got.Equal(want) {
		t.Fatalf("seed 10 generation 0 mismatch:\n%s\nexpected:\n%s", got, want)
	}
	if got.At(0, 0) {
		t.Fatal("cell (0,0) must be dead for seed 10: 10 is not below 32/3")
	}
	if !got.At(11, 0) {
		t.Fatal("cell (11,0) must be alive for seed 10")
	}
	if got.Live() != 396 {
		t.Fatalf("expected 396 live cells, got %d", got.Live())
	}
}

func TestNextGoldenGeneration(t *testing.T) {
	got := Next(mustParse(t, seed10Gen0))
	want := mustParse(t, seed10Gen1)
	if !got.Equal(want) {
		t.Fatalf("seed 10 generation 1 mismatch:\n%s\nexpected:\n%s", got, want)
	}
	if got.Live() != 161 {
		t.Fatalf("expected 161 live cells, got %d", got.Live())
	}
}

func TestSeedGridSize(t *testing.T) {
	for _, s := range []uint64{0, 1, 10, 1 << 40, math.MaxUint64} {
		g := Seed(s, 32)
		if g.Side() != 32 || len(g.Cells()) != 32*32 {
			t.Fatalf("seed %d: side=%d cells=%d", s, g.Side(), len(g.Cells()))
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := Seed(123456789, 32)
	b := Seed(123456789, 32)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	if a.Equal(Seed(123456790, 32)) {
		t.Fatal("adjacent seeds should produce different grids")
	}
}

func TestSeedWrapsModuloSide(t *testing.T) {
	// Only the low bits of the seed survive the mask.
	if !Seed(math.MaxUint64, 32).Equal(Seed(31, 32)) {
		t.Fatal("seed 2^64-1 should match seed 31")
	}
	if !Seed(32+5, 32).Equal(Seed(5, 32)) {
		t.Fatal("seed 37 should match seed 5")
	}
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n); got != wantAlive {
			t.Fatalf("alive with %d neighbours: got %v, expected %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Rule(false, n); got != wantBorn {
			t.Fatalf("dead with %d neighbours: got %v, expected %v", n, got, wantBorn)
		}
	}
}

func TestNextRuleOnCentreCell(t *testing.T) {
	// Neighbour positions around (2,2) on an 8x8 board.
	ring := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			g := core.NewGrid(8)
			g.Set(2, 2, alive)
			for _, p := range ring[:n] {
				g.Set(p[0], p[1], true)
			}
			if got := Neighbors(g, 2, 2); got != n {
				t.Fatalf("expected %d neighbours, counted %d", n, got)
			}
			next := Next(g)
			if next.At(2, 2) != Rule(alive, n) {
				t.Fatalf("alive=%v neighbours=%d: next state %v", alive, n, next.At(2, 2))
			}
		}
	}
}

func TestToroidalWrapAtCorner(t *testing.T) {
	g := core.NewGrid(32)
	g.Set(0, 0, true)
	g.Set(31, 31, true)
	g.Set(31, 0, true)
	g.Set(0, 31, true)

	if got := Neighbors(g, 0, 0); got != 3 {
		t.Fatalf("corner cell should see 3 wrapped neighbours, got %d", got)
	}
	next := Next(g)
	// A 2x2 block split across the four corners is a still life.
	for _, p := range [][2]int{{0, 0}, {31, 31}, {31, 0}, {0, 31}} {
		if !next.At(p[0], p[1]) {
			t.Fatalf("cell (%d,%d) should survive through the wrap", p[0], p[1])
		}
	}
	if next.Live() != 4 {
		t.Fatalf("expected the wrapped block to stay at 4 cells, got %d", next.Live())
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := mustParse(t, seed10Gen0)
	before := g.String()
	Next(g)
	if g.String() != before {
		t.Fatal("Next modified its input grid")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(8, 4)
	g := core.NewGrid(8)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)
	life.cur = g

	if !life.Step() {
		t.Fatal("expected a step to occur")
	}
	expects := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			alive := life.Grid().At(x, y)
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[[2]int{x, y}])
			}
		}
	}

	life.Step()
	if !life.Grid().Equal(g) {
		t.Fatalf("after second step blinker should return to vertical:\n%s", life.Grid())
	}
}

func TestLifeStopsAtTerminalGeneration(t *testing.T) {
	life := New(32, 3)
	life.Reset(10)
	if life.Seed() != 10 || life.Generation() != 0 {
		t.Fatalf("unexpected state after reset: seed=%d gen=%d", life.Seed(), life.Generation())
	}
	if !life.Step() || !life.Step() {
		t.Fatal("expected two steps before the terminal generation")
	}
	if life.Step() {
		t.Fatal("Step past the terminal generation should report false")
	}
	if life.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", life.Generation())
	}

	life.Reset(10)
	if !life.Grid().Equal(Seed(10, 32)) {
		t.Fatal("Reset should rebuild generation zero")
	}
}
