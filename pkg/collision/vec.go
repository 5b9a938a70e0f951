package collision

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the 2D vector used throughout the package.
type Vec2 = mgl64.Vec2

const (
	epsilon     = 1e-9
	unitEpsilon = 1e-6
)

var (
	axisX = Vec2{1, 0}
	axisY = Vec2{0, 1}
)

// perp rotates v a quarter turn counter-clockwise.
func perp(v Vec2) Vec2 {
	return Vec2{-v[1], v[0]}
}

func perpDot(a, b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiniteVec(v Vec2) bool {
	return isFinite(v[0]) && isFinite(v[1])
}

func isUnit(v Vec2) bool {
	return math.Abs(v.LenSqr()-1) <= unitEpsilon
}

// mustNormalize panics on zero or non-finite input instead of producing NaN.
func mustNormalize(v Vec2) Vec2 {
	l := v.Len()
	if l <= epsilon || !isFinite(l) {
		panic(fmt.Errorf("normalize %v: %w", v, ErrZeroVector))
	}
	return v.Mul(1 / l)
}

// axisBetween returns the unit axis from a to b, or false when the points coincide.
func axisBetween(from, to Vec2) (Vec2, bool) {
	d := to.Sub(from)
	l := d.Len()
	if l <= epsilon {
		return Vec2{}, false
	}
	return d.Mul(1 / l), true
}

func appendAxisBetween(dst []Vec2, from, to Vec2) []Vec2 {
	if axis, ok := axisBetween(from, to); ok {
		return append(dst, axis)
	}
	return dst
}

// closestOnSegment returns the point of segment [a, b] nearest to p.
func closestOnSegment(a, b, p Vec2) Vec2 {
	ab := b.Sub(a)
	l2 := ab.LenSqr()
	if l2 <= epsilon*epsilon {
		return a
	}
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Mul(t))
}

func nearestPoint(points []Vec2, p Vec2) Vec2 {
	best, bestDist := points[0], math.Inf(1)
	for _, v := range points {
		if d := v.Sub(p).LenSqr(); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}
