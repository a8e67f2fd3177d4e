package v3borders

import (
	"fmt"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

// LabelGrid is the integer grid mutated by the tracer. Cells hold 0
// (background), 1 (unvisited foreground), or ±id for cells assigned to
// a traced border. Once a cell becomes nonzero it is never reset to
// zero.
//
// Every relabel appends a BorderEntry to the border table, so the
// table records points in the exact order the tracer visited them.
type LabelGrid struct {
	W, H    int
	cells   []int
	entries []vision.BorderEntry
}

// NewLabelGrid wraps a row-major 0/1 label slice, typically the output
// of v2edges.Binarize. The slice length must equal w*h.
func NewLabelGrid(w, h int, labels []int) *LabelGrid {
	if len(labels) != w*h {
		panic(fmt.Sprintf("v3borders: label length %d does not match %dx%d grid", len(labels), w, h))
	}
	return &LabelGrid{W: w, H: h, cells: labels}
}

// At returns the label at (x, y); out-of-bounds reads are background.
func (g *LabelGrid) At(x, y int) int {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.cells[y*g.W+x]
}

// put relabels an in-bounds cell and records the visit in the border
// table using normalized coordinates. Out-of-bounds writes are
// dropped.
func (g *LabelGrid) put(x, y, label int) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.cells[y*g.W+x] = label
	g.entries = append(g.entries, vision.BorderEntry{
		ID: label,
		Point: vision.Point{
			X: float64(x) / float64(g.W),
			Y: float64(y) / float64(g.H),
		},
	})
}

// Entries returns the ordered border table accumulated during tracing.
func (g *LabelGrid) Entries() []vision.BorderEntry {
	return g.entries
}

// Cells exposes the backing label slice for tests and diagnostics.
func (g *LabelGrid) Cells() []int {
	return g.cells
}
