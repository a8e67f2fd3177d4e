package v1raster

import (
	"fmt"
	"math"
)

// Grid is a dense W×H scalar raster stored row-major. Values are
// normalized intensities or derived quantities (gradient magnitudes,
// directions). A Grid is immutable by convention once a stage hands it
// to the next one.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid returns a zero-filled grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// FromSamples wraps a row-major sample slice as a grid. The slice
// length must equal w*h; anything else is a programmer error.
func FromSamples(w, h int, samples []float64) *Grid {
	if len(samples) != w*h {
		panic(fmt.Sprintf("v1raster: sample length %d does not match %dx%d grid", len(samples), w, h))
	}
	return &Grid{W: w, H: h, data: samples}
}

// At returns the value at integer cell (x, y). Out-of-range
// coordinates yield 0.0, the missing-sample convention shared by
// every stage that reads neighbours.
func (g *Grid) At(x, y int) float64 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set writes the value at cell (x, y). Out-of-range writes are
// dropped.
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// Sample bilinearly interpolates the grid at fractional coordinates.
// The four surrounding cells are read with At, so corners outside the
// grid contribute 0.0 rather than clamping to the edge.
func (g *Grid) Sample(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	v00 := g.At(x0, y0)
	v10 := g.At(x0+1, y0)
	v01 := g.At(x0, y0+1)
	v11 := g.At(x0+1, y0+1)

	top := v00*(1-tx) + v10*tx
	bottom := v01*(1-tx) + v11*tx
	return top*(1-ty) + bottom*ty
}

// Max returns the largest value in the grid, or 0 for an empty grid.
func (g *Grid) Max() float64 {
	var max float64
	for _, v := range g.data {
		if v > max {
			max = v
		}
	}
	return max
}

// Values exposes the backing slice. Callers must treat it as
// read-only; it exists for histogram and export passes that walk
// every cell.
func (g *Grid) Values() []float64 {
	return g.data
}
