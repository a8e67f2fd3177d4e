package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline-data/sketch.trace/internal/vision/v1raster"
)

// brightSquare builds a grid with a filled bright square on a dark
// background, the simplest input with a real closed edge.
func brightSquare(size, lo, hi int) *v1raster.Grid {
	g := v1raster.NewGrid(size, size)
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			g.Set(x, y, 1.0)
		}
	}
	return g
}

func TestVectorizeFindsSquareOutline(t *testing.T) {
	g := brightSquare(24, 8, 15)

	p := DefaultParams()
	p.DisableBlur = true

	res, err := Vectorize(g, p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Curves)

	// Curve points are normalized grid coordinates.
	for ci, c := range res.Curves {
		require.GreaterOrEqual(t, len(c), 1, "curve %d", ci)
		for _, pt := range c {
			assert.GreaterOrEqual(t, pt.X, 0.0)
			assert.Less(t, pt.X, 1.0)
			assert.GreaterOrEqual(t, pt.Y, 0.0)
			assert.Less(t, pt.Y, 1.0)
		}
	}

	// Longest first.
	for i := 1; i < len(res.Curves); i++ {
		assert.GreaterOrEqual(t,
			res.Curves[i-1].ArcLength(), res.Curves[i].ArcLength(),
			"curves %d and %d out of order", i-1, i)
	}

	assert.Equal(t, p.Threshold, res.Threshold)
	require.NotNil(t, res.Thinned)
	assert.Equal(t, g.W, res.Thinned.W)
	assert.Equal(t, g.H, res.Thinned.H)
}

func TestVectorizeBlurStillFindsCurves(t *testing.T) {
	g := brightSquare(24, 8, 15)

	res, err := Vectorize(g, DefaultParams())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Curves)
}

func TestVectorizeEmptyImage(t *testing.T) {
	res, err := Vectorize(v1raster.NewGrid(16, 16), DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, res.Curves)
}

// On a featureless image the histogram is unusable and the run falls
// back to the configured cutoff.
func TestVectorizeAutoThresholdFallback(t *testing.T) {
	p := DefaultParams()
	p.AutoThreshold = true
	p.Threshold = 0.42

	res, err := Vectorize(v1raster.NewGrid(16, 16), p)
	require.NoError(t, err)
	assert.Equal(t, 0.42, res.Threshold)
}

func TestVectorizeAutoThresholdUsesHistogram(t *testing.T) {
	g := brightSquare(24, 8, 15)

	p := DefaultParams()
	p.AutoThreshold = true
	p.DisableBlur = true

	res, err := Vectorize(g, p)
	require.NoError(t, err)
	assert.NotEqual(t, p.Threshold, res.Threshold)
	assert.Greater(t, res.Threshold, 0.0)
}

func TestVectorizeNegativeEpsilon(t *testing.T) {
	p := DefaultParams()
	p.Epsilon = -1

	_, err := Vectorize(v1raster.NewGrid(8, 8), p)
	require.Error(t, err)
}

func TestVectorizeMinLengthPrunes(t *testing.T) {
	g := brightSquare(24, 8, 15)

	p := DefaultParams()
	p.DisableBlur = true
	p.MinLength = 1e9 // absurdly large: nothing survives

	res, err := Vectorize(g, p)
	require.NoError(t, err)
	assert.Empty(t, res.Curves)
}
