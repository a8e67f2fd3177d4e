package v2edges

import (
	"gonum.org/v1/gonum/floats"

	"github.com/inkline-data/sketch.trace/internal/vision/v1raster"
)

// otsuBins is the histogram resolution for the auto-threshold. 256
// matches the 8-bit depth of the diagnostic dump, so the computed
// threshold lines up with what an operator sees in the edge image.
const otsuBins = 256

// OtsuThreshold derives a binarization cutoff from the thinned
// magnitude grid using Otsu's method: the histogram split maximizing
// between-class variance. Magnitudes are binned relative to the grid
// maximum and the chosen bin is mapped back to magnitude units.
//
// Returns 0 for an empty or all-zero grid, which makes every nonzero
// cell foreground — the caller treats that as "no usable histogram"
// and falls back to the configured threshold.
func OtsuThreshold(mag *v1raster.Grid) float64 {
	max := mag.Max()
	if max == 0 {
		return 0
	}

	hist := make([]float64, otsuBins)
	for _, v := range mag.Values() {
		bin := int(v / max * (otsuBins - 1))
		hist[bin]++
	}
	total := floats.Sum(hist)

	// Cumulative weight and mean of the background class as the split
	// point sweeps the histogram.
	var sumAll float64
	for i, h := range hist {
		sumAll += float64(i) * h
	}

	var wBg, sumBg, bestVar float64
	best := 0
	for i := 0; i < otsuBins; i++ {
		wBg += hist[i]
		if wBg == 0 {
			continue
		}
		wFg := total - wBg
		if wFg == 0 {
			break
		}
		sumBg += float64(i) * hist[i]

		meanBg := sumBg / wBg
		meanFg := (sumAll - sumBg) / wFg
		diff := meanBg - meanFg
		between := wBg * wFg * diff * diff
		if between > bestVar {
			bestVar = between
			best = i
		}
	}

	return float64(best) / (otsuBins - 1) * max
}
