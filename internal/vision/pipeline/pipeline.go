package pipeline

import (
	"time"

	"github.com/inkline-data/sketch.trace/internal/monitoring"
	"github.com/inkline-data/sketch.trace/internal/vision"
	"github.com/inkline-data/sketch.trace/internal/vision/v1raster"
	"github.com/inkline-data/sketch.trace/internal/vision/v2edges"
	"github.com/inkline-data/sketch.trace/internal/vision/v3borders"
	"github.com/inkline-data/sketch.trace/internal/vision/v4curves"
)

// Params carries the resolved tuning values for one vectorize run.
type Params struct {
	// Threshold is the binarization cutoff applied to the thinned
	// magnitude grid.
	Threshold float64

	// AutoThreshold derives the cutoff from the magnitude histogram
	// (Otsu) instead of Threshold, falling back to Threshold when the
	// histogram is unusable.
	AutoThreshold bool

	// Epsilon is the simplification tolerance in normalized units.
	Epsilon float64

	// MinLength drops curves with a shorter arc length after sorting.
	MinLength float64

	// DisableBlur skips the Gaussian pre-filter. Useful on inputs
	// that are already clean line art.
	DisableBlur bool

	// Verbose logs per-stage timings and counts.
	Verbose bool
}

// DefaultParams returns the documented defaults: threshold 0.5,
// epsilon 0.01, no minimum length.
func DefaultParams() Params {
	return Params{
		Threshold: 0.5,
		Epsilon:   0.01,
		MinLength: 0.0,
	}
}

// Result is the output of one vectorize run.
type Result struct {
	// Curves is the ordered curve list, longest first, pruned to
	// MinLength.
	Curves []vision.Curve

	// Thinned is the post-suppression magnitude grid, kept for the
	// diagnostic grayscale dump.
	Thinned *v1raster.Grid

	// Threshold is the cutoff actually used, which differs from
	// Params.Threshold when auto-thresholding is on.
	Threshold float64
}

// Vectorize runs the full image-to-curves pipeline on a normalized
// grayscale grid: blur, directional gradients, magnitude/direction
// combine, non-maximum suppression, binarization, border tracing,
// curve extraction, simplification, and ordering.
//
// Every stage performs a full pass over its input and hands exclusive
// ownership of its output to the next stage; only the border tracer
// mutates its (freshly built) label grid in place.
func Vectorize(g *v1raster.Grid, p Params) (*Result, error) {
	started := time.Now()

	src := g
	if !p.DisableBlur {
		src = v1raster.Convolve(g, v1raster.GaussianKernel5, 5, true)
	}

	horiz := v1raster.Convolve(src, v1raster.SobelHorizontal5, 5, false)
	vert := v1raster.Convolve(src, v1raster.SobelVertical5, 5, false)

	mag, dir := v2edges.Combine(horiz, vert)
	thinned := v2edges.Thin(mag, dir)

	threshold := p.Threshold
	if p.AutoThreshold {
		if t := v2edges.OtsuThreshold(thinned); t > 0 {
			threshold = t
		}
	}

	labels := v2edges.Binarize(thinned, threshold)
	grid := v3borders.NewLabelGrid(thinned.W, thinned.H, labels)
	v3borders.Trace(grid)

	curves := v3borders.ExtractCurves(grid.Entries())

	simplified, err := v4curves.SimplifyAll(curves, p.Epsilon)
	if err != nil {
		return nil, err
	}

	ordered := v4curves.SortAndPrune(simplified, p.MinLength)

	if p.Verbose {
		monitoring.Logf("vectorize: %dx%d grid, threshold=%.4f, %d borders -> %d curves in %v",
			g.W, g.H, threshold, len(curves), len(ordered), time.Since(started).Round(time.Millisecond))
	}

	return &Result{
		Curves:    ordered,
		Thinned:   thinned,
		Threshold: threshold,
	}, nil
}
