package v4curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

func TestSortAndPruneOrdersByLength(t *testing.T) {
	short := vision.Curve{{X: 0, Y: 0}, {X: 0.1, Y: 0}}
	medium := vision.Curve{{X: 0, Y: 0}, {X: 0.5, Y: 0}}
	long := vision.Curve{{X: 0, Y: 0}, {X: 1, Y: 0}}

	got := SortAndPrune([]vision.Curve{short, long, medium}, 0)
	require.Len(t, got, 3)
	assert.Equal(t, long, got[0])
	assert.Equal(t, medium, got[1])
	assert.Equal(t, short, got[2])
}

func TestSortAndPrunePrunesShortCurves(t *testing.T) {
	tiny := vision.Curve{{X: 0, Y: 0}, {X: 0.01, Y: 0}}
	long := vision.Curve{{X: 0, Y: 0}, {X: 0.8, Y: 0}}

	got := SortAndPrune([]vision.Curve{tiny, long}, 0.1)
	require.Len(t, got, 1)
	assert.Equal(t, long, got[0])
}

// A curve whose length equals the minimum survives the cut.
func TestSortAndPruneKeepsExactMinimum(t *testing.T) {
	c := vision.Curve{{X: 0, Y: 0}, {X: 0.5, Y: 0}}
	got := SortAndPrune([]vision.Curve{c}, 0.5)
	assert.Len(t, got, 1)
}

func TestSortAndPruneEmpty(t *testing.T) {
	assert.Empty(t, SortAndPrune(nil, 0.1))
}
