package core

// Sim defines the minimal contract the viewer needs from a simulation.
type Sim interface {
	Name() string
	Side() int
	Seed() uint64
	Generation() int
	Reset(seed uint64)
	Step() bool
	Grid() *Grid
}
