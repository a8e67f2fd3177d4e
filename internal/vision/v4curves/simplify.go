package v4curves

import (
	"fmt"
	"math"

	"github.com/inkline-data/sketch.trace/internal/vision"
)

// SimplifyAll reduces every curve with the given tolerance. A negative
// tolerance is a configuration error and is rejected before any curve
// is processed.
func SimplifyAll(curves []vision.Curve, epsilon float64) ([]vision.Curve, error) {
	if epsilon < 0 {
		return nil, fmt.Errorf("v4curves: simplification tolerance must be >= 0, got %v", epsilon)
	}
	out := make([]vision.Curve, len(curves))
	for i, c := range curves {
		out[i] = Simplify(c, epsilon)
	}
	return out, nil
}

// Simplify reduces a curve with a recursive Ramer–Douglas–Peucker
// pass. Curves with fewer than two points pass through untouched.
// The returned curve always keeps the input's first and last point and
// never has more points than the input.
func Simplify(c vision.Curve, epsilon float64) vision.Curve {
	if len(c) < 2 {
		return c
	}
	return simplify(c, epsilon)
}

// simplify recurses on sub-curves of at least two points. The split
// point belongs to both halves; it is dropped from the right half on
// concatenation so it appears exactly once, at the junction.
func simplify(c vision.Curve, epsilon float64) vision.Curve {
	last := len(c) - 1

	var dmax float64
	index := 0
	for i := 1; i < last; i++ {
		if d := chordDistance(c[i], c[0], c[last]); d > dmax {
			index = i
			dmax = d
		}
	}

	if dmax > epsilon {
		left := simplify(c[:index+1], epsilon)
		right := simplify(c[index:], epsilon)

		out := make(vision.Curve, 0, len(left)+len(right)-1)
		out = append(out, left...)
		out = append(out, right[1:]...)
		return out
	}
	return vision.Curve{c[0], c[last]}
}

// chordDistance is the perpendicular distance from p to the chord
// a→b: |cross(b-a, p-a)| / |b-a|. A closed curve yields a zero-length
// chord; the distance then degrades to the direct distance from p to
// a, which keeps the farthest point well defined instead of dividing
// by zero.
func chordDistance(p, a, b vision.Point) float64 {
	vx := b.X - a.X
	vy := b.Y - a.Y
	length := math.Hypot(vx, vy)
	if length == 0 {
		return vision.Dist(p, a)
	}

	wx := a.X - p.X
	wy := a.Y - p.Y
	return math.Abs(vx*wy-wx*vy) / length
}
