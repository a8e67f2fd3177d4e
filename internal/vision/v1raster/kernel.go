package v1raster

import "fmt"

// Fixed kernels for the pre-filter and derivative stages. The literal
// coefficients are part of the pipeline contract: changing them changes
// every downstream threshold.

// GaussianKernel5 is the 5×5 Gaussian blur kernel. Weights sum to 159
// and are applied in average mode.
var GaussianKernel5 = []float64{
	2, 4, 5, 4, 2,
	4, 9, 12, 9, 4,
	5, 12, 15, 12, 5,
	4, 9, 12, 9, 4,
	2, 4, 5, 4, 2,
}

// SobelHorizontal5 is the 5×5 horizontal derivative kernel, positive
// toward the left edge. Applied non-averaged.
var SobelHorizontal5 = []float64{
	1, 2, 0, -2, -1,
	4, 8, 0, -8, -4,
	6, 12, 0, -12, -6,
	4, 8, 0, -8, -4,
	1, 2, 0, -2, -1,
}

// SobelVertical5 is the 5×5 vertical derivative kernel, positive
// toward the top edge. Applied non-averaged.
var SobelVertical5 = []float64{
	1, 4, 6, 4, 1,
	2, 8, 12, 8, 2,
	0, 0, 0, 0, 0,
	-2, -8, -12, -8, -2,
	-1, -4, -6, -4, -1,
}

// Convolve applies a K×K kernel (K odd) centered on every cell and
// returns a new grid of identical dimensions. Window cells falling
// outside the grid are skipped from the sum and, when averaging, from
// the normalization divisor as well: zero-padding for the numerator,
// exclusion for the divisor.
//
// The kernel length must be k*k; a mismatch is a programmer error and
// panics before any cell is processed.
func Convolve(g *Grid, kernel []float64, k int, average bool) *Grid {
	if len(kernel) != k*k {
		panic(fmt.Sprintf("v1raster: kernel length %d does not match %dx%d", len(kernel), k, k))
	}

	half := k / 2
	out := NewGrid(g.W, g.H)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			var sum, weight float64
			for oy := -half; oy <= half; oy++ {
				sy := y + oy
				if sy < 0 || sy >= g.H {
					continue
				}
				for ox := -half; ox <= half; ox++ {
					sx := x + ox
					if sx < 0 || sx >= g.W {
						continue
					}
					w := kernel[(oy+half)*k+(ox+half)]
					sum += w * g.At(sx, sy)
					weight += w
				}
			}
			if average && weight != 0 {
				sum /= weight
			}
			out.Set(x, y, sum)
		}
	}
	return out
}
