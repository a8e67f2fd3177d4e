package vision

import "math"

// Point is a position in normalized image coordinates: X is the column
// divided by the image width, Y the row divided by the image height,
// both in [0,1]. Normalized coordinates keep curves independent of the
// source resolution so the drawer can map them onto any canvas.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Curve is an ordered, non-empty sequence of points describing one
// traced boundary. Curves are replaced wholesale by the simplifier,
// never edited in place.
type Curve []Point

// ArcLength returns the sum of Euclidean distances between consecutive
// points. A curve with fewer than two points has length zero.
func (c Curve) ArcLength() float64 {
	var total float64
	for i := 1; i < len(c); i++ {
		total += Dist(c[i-1], c[i])
	}
	return total
}

// BorderEntry pairs a signed border id with the point at which a cell
// was relabeled during tracing. The sign encodes the hole/outer
// transition used by the tracer's bookkeeping; downstream consumers
// only rely on contiguous runs sharing the same value.
type BorderEntry struct {
	ID    int
	Point Point
}
