package v3borders

import "github.com/inkline-data/sketch.trace/internal/vision"

// ExtractCurves groups the ordered border table into maximal
// contiguous runs sharing the same border id, one curve per run, in
// discovery order. Ids are compared by magnitude: the sign only
// records the hole/outer transition during tracing and must not split
// a boundary into separate curves.
func ExtractCurves(entries []vision.BorderEntry) []vision.Curve {
	var curves []vision.Curve
	var current vision.Curve
	lastID := 0

	for i, e := range entries {
		if i == 0 || absInt(e.ID) != absInt(lastID) {
			if len(current) > 0 {
				curves = append(curves, current)
			}
			current = vision.Curve{e.Point}
		} else {
			current = append(current, e.Point)
		}
		lastID = e.ID
	}
	if len(current) > 0 {
		curves = append(curves, current)
	}
	return curves
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
