package v2edges

import "github.com/inkline-data/sketch.trace/internal/vision/v1raster"

// Binarize thresholds a magnitude grid into a flat row-major 0/1 label
// slice for the border tracer. Cells strictly above the threshold
// become foreground (1); exact equality is background.
func Binarize(mag *v1raster.Grid, threshold float64) []int {
	labels := make([]int, mag.W*mag.H)
	for y := 0; y < mag.H; y++ {
		for x := 0; x < mag.W; x++ {
			if mag.At(x, y) > threshold {
				labels[y*mag.W+x] = 1
			}
		}
	}
	return labels
}
