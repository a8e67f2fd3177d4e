package v4curves

import (
	"sort"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

// SortAndPrune orders curves by descending arc length and drops every
// curve shorter than minLength. Sorting and pruning are one operation
// because the truncation scan is only correct on a descending-sorted
// list.
func SortAndPrune(curves []vision.Curve, minLength float64) []vision.Curve {
	type measured struct {
		curve  vision.Curve
		length float64
	}

	ms := make([]measured, len(curves))
	for i, c := range curves {
		ms[i] = measured{curve: c, length: c.ArcLength()}
	}
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].length > ms[j].length
	})

	out := make([]vision.Curve, 0, len(ms))
	for _, m := range ms {
		if m.length < minLength {
			// Descending order: everything after this is shorter too.
			break
		}
		out = append(out, m.curve)
	}
	return out
}
