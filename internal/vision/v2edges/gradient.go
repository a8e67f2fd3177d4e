package v2edges

import (
	"math"

	"github.com/inkline-data/sketch.trace/internal/vision/v1raster"
)

// Combine folds a horizontal and a vertical derivative grid into a
// gradient magnitude grid (Euclidean norm per cell) and a direction
// grid (angle per cell, radians). Both inputs must share dimensions;
// the pipeline always produces them from the same source grid. Pure,
// no mutation.
func Combine(horiz, vert *v1raster.Grid) (mag, dir *v1raster.Grid) {
	mag = v1raster.NewGrid(horiz.W, horiz.H)
	dir = v1raster.NewGrid(horiz.W, horiz.H)

	for y := 0; y < horiz.H; y++ {
		for x := 0; x < horiz.W; x++ {
			h := horiz.At(x, y)
			v := vert.At(x, y)
			mag.Set(x, y, math.Hypot(h, v))
			dir.Set(x, y, math.Atan2(v, h))
		}
	}
	return mag, dir
}
