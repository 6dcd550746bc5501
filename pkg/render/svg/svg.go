// Package svg serializes Game of Life generations into a single animated SVG
// document. Each live cell becomes one rect whose animation delay places it on
// the timeline of its generation.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"golart/pkg/core"
)

// DelayPerGeneration is the animation offset between consecutive generations,
// in milliseconds.
const DelayPerGeneration = 400

const (
	classPulse = "gol-cell"
	classHold  = "gol-cell last"
	rootClose  = "</svg>"
)

const styleBlock = `<style>` +
	`@keyframes gol_pulse{0%{opacity:0}20%{opacity:1}80%{opacity:1}100%{opacity:0}}` +
	`@keyframes gol_last{0%{opacity:0}20%{opacity:1}100%{opacity:1}}` +
	`.gol-cell{fill:#000;opacity:0;animation:gol_pulse 500ms forwards}` +
	`.gol-cell.last{animation:gol_last 500ms forwards}` +
	`</style>`

// Options fixes the board and drawing geometry of a document.
type Options struct {
	Side        int
	Generations int
	CellSize    int
	ViewBox     int
}

// Validate reports whether the options describe a drawable document.
func (o Options) Validate() error {
	if !core.IsPowerOfTwo(o.Side) {
		return fmt.Errorf("svg: side %d is not a power of two", o.Side)
	}
	if o.Generations < 1 {
		return fmt.Errorf("svg: generations must be at least 1, got %d", o.Generations)
	}
	if o.CellSize < 2 {
		return fmt.Errorf("svg: cell size must be at least 2, got %d", o.CellSize)
	}
	if o.ViewBox <= 0 {
		return fmt.Errorf("svg: view box must be positive, got %d", o.ViewBox)
	}
	return nil
}

// Cell is a single live cell scheduled for output.
type Cell struct {
	X, Y int
	Gen  int
	Hold bool
}

// Writer accumulates one document. Generations must be written in order,
// starting at zero, and the document is finished by Close.
type Writer struct {
	opts      Options
	b         strings.Builder
	next      int
	prevLive  bool
	fragments int
	doc       string
	closed    bool
}

// NewWriter opens a document and writes the root element and style block. It
// panics when opts is invalid.
func NewWriter(opts Options) *Writer {
	if err := opts.Validate(); err != nil {
		panic(err)
	}
	w := &Writer{opts: opts}
	w.b.Grow(sizeHint(opts))
	vb := strconv.Itoa(opts.ViewBox)
	w.b.WriteString(`<svg viewBox="0 0 ` + vb + ` ` + vb + `" xmlns="http://www.w3.org/2000/svg">`)
	w.b.WriteString(styleBlock)
	return w
}

// Generation appends one rect per live cell of g, scanning rows top to bottom.
// Cells of the terminal generation get the hold class when the generation
// written before it had at least one live cell.
func (w *Writer) Generation(gen int, g *core.Grid) {
	if w.closed {
		panic("svg: generation written after Close")
	}
	if gen != w.next || gen >= w.opts.Generations {
		panic(fmt.Sprintf("svg: generation %d written out of order (expected %d of %d)", gen, w.next, w.opts.Generations))
	}
	if g.Side() != w.opts.Side {
		panic(fmt.Sprintf("svg: grid side %d does not match document side %d", g.Side(), w.opts.Side))
	}

	hold := gen == w.opts.Generations-1 && w.prevLive
	side := g.Side()
	cells := g.Cells()
	live := false
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !cells[y*side+x] {
				continue
			}
			live = true
			w.writeCell(Cell{X: x, Y: y, Gen: gen, Hold: hold})
		}
	}
	w.prevLive = live
	w.next++
}

func (w *Writer) writeCell(c Cell) {
	class := classPulse
	if c.Hold {
		class = classHold
	}
	size := w.opts.CellSize
	inner := strconv.Itoa(size - 1)
	w.b.WriteString(`<rect class="`)
	w.b.WriteString(class)
	w.b.WriteString(`" x="`)
	w.b.WriteString(strconv.Itoa(c.X*size + 1))
	w.b.WriteString(`" y="`)
	w.b.WriteString(strconv.Itoa(c.Y*size + 1))
	w.b.WriteString(`" width="`)
	w.b.WriteString(inner)
	w.b.WriteString(`" height="`)
	w.b.WriteString(inner)
	w.b.WriteString(`" style="animation-delay:`)
	w.b.WriteString(strconv.Itoa(c.Gen * DelayPerGeneration))
	w.b.WriteString(`ms"/>`)
	w.fragments++
}

// Fragments returns the number of rects written so far.
func (w *Writer) Fragments() int { return w.fragments }

// Close closes the root element and returns the document. Later calls return
// the same document.
func (w *Writer) Close() string {
	if !w.closed {
		w.b.WriteString(rootClose)
		w.doc = w.b.String()
		w.closed = true
	}
	return w.doc
}

// Animate renders generation zero from initial followed by Generations-1
// successive applications of step.
func Animate(initial *core.Grid, step func(*core.Grid) *core.Grid, opts Options) string {
	w := NewWriter(opts)
	cur := initial
	w.Generation(0, cur)
	for gen := 1; gen < opts.Generations; gen++ {
		cur = step(cur)
		w.Generation(gen, cur)
	}
	return w.Close()
}

// sizeHint bounds the document length when every cell of every generation is
// alive.
func sizeHint(opts Options) int {
	maxCoord := len(strconv.Itoa((opts.Side-1)*opts.CellSize + 1))
	maxDelay := len(strconv.Itoa((opts.Generations - 1) * DelayPerGeneration))
	rect := len(`<rect class="`+classHold+`" x="" y="" width="" height="" style="animation-delay:ms"/>`) +
		2*maxCoord + 2*len(strconv.Itoa(opts.CellSize-1)) + maxDelay
	header := len(`<svg viewBox="0 0  " xmlns="http://www.w3.org/2000/svg">`) + 2*len(strconv.Itoa(opts.ViewBox))
	return header + len(styleBlock) + opts.Side*opts.Side*opts.Generations*rect + len(rootClose)
}
