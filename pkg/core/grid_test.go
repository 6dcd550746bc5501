package core

import (
	"slices"
	"testing"
	"time"
)

func TestNewGridRejectsNonPowerOfTwo(t *testing.T) {
	for _, side := range []int{0, -4, 3, 12, 33} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewGrid(%d) should panic", side)
				}
			}()
			NewGrid(side)
		}()
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(8)
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 7, 7},
		{8, 0, 0, 0},
		{3, 9, 3, 1},
		{-9, 2, 7, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}

	g.Set(-1, 0, true)
	if !g.At(7, 0) {
		t.Fatal("Set with negative x should wrap to the last column")
	}
	if g.Live() != 1 {
		t.Fatalf("expected 1 live cell, got %d", g.Live())
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	src := `
#...
.#..
..#.
...#
`
	g, err := ParseGrid(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Side() != 4 || g.Live() != 4 {
		t.Fatalf("unexpected grid side=%d live=%d", g.Side(), g.Live())
	}
	again, err := ParseGrid(g.String())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !g.Equal(again) {
		t.Fatalf("round trip mismatch:\n%s\n%s", g, again)
	}
}

func TestParseGridErrors(t *testing.T) {
	for _, src := range []string{"", "#.\n", "#..\n...\n...\n", "#x\n..\n"} {
		if _, err := ParseGrid(src); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}

func TestRNGSeedsDeterministic(t *testing.T) {
	a := NewRNG(7).Seeds(5)
	b := NewRNG(7).Seeds(5)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced %v and %v", a, b)
	}
	if slices.Equal(a, NewRNG(8).Seeds(5)) {
		t.Fatal("different seeds should produce different sequences")
	}
	if NewRNG(1).Seeds(0) != nil {
		t.Fatal("Seeds(0) should be nil")
	}
}

func TestFixedStepPeriod(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(400 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the period elapses")
	}
	clock = clock.Add(300 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the period elapses")
	}

	fs.SetPeriod(0)
	if fs.Period() != 400*time.Millisecond {
		t.Fatalf("non-positive period should fall back to 400ms, got %v", fs.Period())
	}
}
