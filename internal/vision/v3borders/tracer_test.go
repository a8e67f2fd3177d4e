package v3borders

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

// squareLabels is a 5x5 grid with a 3x3 foreground square centered at
// (2,2). Its single boundary touches all 8 perimeter cells.
func squareLabels() []int {
	return []int{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	}
}

func TestTraceSquare(t *testing.T) {
	g := NewLabelGrid(5, 5, squareLabels())
	Trace(g)

	// The walk starts at the seed (1,1) and runs counter-clockwise
	// around the perimeter, one table entry per cell.
	wantOrder := []vision.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.2, Y: 0.4},
		{X: 0.2, Y: 0.6},
		{X: 0.4, Y: 0.6},
		{X: 0.6, Y: 0.6},
		{X: 0.6, Y: 0.4},
		{X: 0.6, Y: 0.2},
		{X: 0.4, Y: 0.2},
	}
	entries := g.Entries()
	require.Len(t, entries, 8)
	for i, e := range entries {
		assert.Equal(t, wantOrder[i], e.Point, "entry %d", i)
		assert.Equal(t, 2, absInt(e.ID), "entry %d id", i)
	}

	// Cells on the right flank see background to the east and flip
	// negative; the interior cell is never visited and keeps its 1.
	wantCells := []int{
		0, 0, 0, 0, 0,
		0, 2, 2, -2, 0,
		0, 2, 1, -2, 0,
		0, 2, 2, -2, 0,
		0, 0, 0, 0, 0,
	}
	assert.Equal(t, wantCells, g.Cells())
}

func TestTraceEmptyGrid(t *testing.T) {
	g := NewLabelGrid(4, 4, make([]int, 16))
	Trace(g)

	assert.Empty(t, g.Entries())
	assert.Empty(t, ExtractCurves(g.Entries()))
}

func TestTraceIsolatedPixel(t *testing.T) {
	labels := make([]int, 25)
	labels[2*5+2] = 1
	g := NewLabelGrid(5, 5, labels)
	Trace(g)

	entries := g.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, -2, entries[0].ID)
	assert.Equal(t, vision.Point{X: 0.4, Y: 0.4}, entries[0].Point)

	curves := ExtractCurves(entries)
	require.Len(t, curves, 1)
	assert.Len(t, curves[0], 1)
}

// Two separate blobs get strictly increasing ids starting at 2.
func TestTraceAssignsDistinctIDs(t *testing.T) {
	labels := []int{
		0, 0, 0, 0, 0,
		0, 1, 0, 1, 0,
		0, 0, 0, 0, 0,
	}
	g := NewLabelGrid(5, 3, labels)
	Trace(g)

	entries := g.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 2, absInt(entries[0].ID))
	assert.Equal(t, 3, absInt(entries[1].ID))
}

// The scan order is fixed, so tracing identical grids must give
// identical tables.
func TestTraceDeterministic(t *testing.T) {
	a := NewLabelGrid(5, 5, squareLabels())
	b := NewLabelGrid(5, 5, squareLabels())
	Trace(a)
	Trace(b)

	if diff := cmp.Diff(a.Entries(), b.Entries()); diff != "" {
		t.Errorf("border tables differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Errorf("label grids differ (-a +b):\n%s", diff)
	}
}

func TestNewLabelGridLengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		NewLabelGrid(3, 3, []int{0, 1})
	})
}
