package v2edges

import (
	"math"

	"github.com/inkline-data/sketch.trace/internal/vision/v1raster"
)

// Thin applies non-maximum suppression to the magnitude grid along the
// local gradient direction, producing a single-pixel-wide ridge.
//
// For every cell the direction angle is decomposed into a unit step
// (cosθ, sinθ) and the magnitude is bilinearly sampled one step ahead
// and one step behind. The cell survives only if its own magnitude is
// strictly greater than both samples; fractional samples outside the
// grid resolve to 0 via the grid's missing-sample convention.
func Thin(mag, dir *v1raster.Grid) *v1raster.Grid {
	out := v1raster.NewGrid(mag.W, mag.H)

	for y := 0; y < mag.H; y++ {
		for x := 0; x < mag.W; x++ {
			v := mag.At(x, y)
			if v == 0 {
				continue
			}
			theta := dir.At(x, y)
			dx := math.Cos(theta)
			dy := math.Sin(theta)

			ahead := mag.Sample(float64(x)+dx, float64(y)+dy)
			behind := mag.Sample(float64(x)-dx, float64(y)-dy)

			if v > ahead && v > behind {
				out.Set(x, y, v)
			}
		}
	}
	return out
}
