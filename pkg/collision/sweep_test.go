package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepSmearEquivalence(t *testing.T) {
	motion := Vec2{10, 0}
	shapes := []Shape{
		Rect{Origin: Vec2{1, 2}, HalfExtent: Vec2{1, 0.5}},
		must(NewSlope(Vec2{0, 0}, -2, 3)),
		must(NewPolygon(Vec2{0, 0}, Vec2{2, 0}, Vec2{3, 1}, Vec2{1, 2})),
		must(NewLine(Vec2{0, 0}, Vec2{1, 3})),
		Point{At: Vec2{4, 4}},
	}
	axes := []Vec2{axisX, axisY, mustNormalize(Vec2{1, 1}), mustNormalize(Vec2{-2, 1})}
	for _, s := range shapes {
		require.True(t, s.CanSmearProjection())
		sweep := must(NewSweep(s, motion))
		for _, axis := range axes {
			want := s.ProjectOnAxis(axis).Merged(s.WithOffset(motion).ProjectOnAxis(axis))
			got := sweep.ProjectOnAxis(axis)
			assert.InDelta(t, want.Min, got.Min, 1e-9, "%s on %v", s.Kind(), axis)
			assert.InDelta(t, want.Max, got.Max, 1e-9, "%s on %v", s.Kind(), axis)
		}
	}
}

func TestSweepUnionProjection(t *testing.T) {
	c := Circle{Origin: Vec2{0, 0}, Radius: 1}
	sweep := must(NewSweep(c, Vec2{3, 4}))
	assert.False(t, c.CanSmearProjection())

	p := sweep.ProjectOnAxis(axisX)
	assert.InDelta(t, -1, p.Min, 1e-12)
	assert.InDelta(t, 4, p.Max, 1e-12)

	points := sweep.AppendPoints(nil)
	assert.Equal(t, []Vec2{{0, 0}, {3, 4}}, points)

	axes, projections := sweep.AppendAxes(nil, nil)
	require.Len(t, axes, 1)
	assertVec(t, Vec2{-0.8, 0.6}, axes[0])
	assert.InDelta(t, -1, projections[0].Min, 1e-12)
	assert.InDelta(t, 1, projections[0].Max, 1e-12)

	derived := sweep.AppendAxesDerived([]Vec2{{0, 5}}, nil)
	assert.Len(t, derived, 2)
}

func TestSweepOverlap(t *testing.T) {
	sweep := must(NewSweep(Circle{Radius: 0.5}, Vec2{10, 0}))
	wall := Rect{Origin: Vec2{5, 0}, HalfExtent: Vec2{0.1, 3}}
	_, ok := TestOverlap(sweep, wall, ModeRequireOverlap)
	assert.True(t, ok, "thin wall between start and end")

	_, ok = TestOverlap(sweep, wall.WithOffset(Vec2{0, 4}), ModeRequireOverlap)
	assert.False(t, ok)
}

func TestSweepCombinedPath(t *testing.T) {
	near := Rect{Origin: Vec2{5, 0}, HalfExtent: Vec2{1, 1}}
	far := Rect{Origin: Vec2{8, 0}, HalfExtent: Vec2{1, 1}}

	hit, ok := TestSweep(Circle{Radius: 1}, Vec2{10, 0}, []Shape{far, near})
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, 0.3, hit.Fraction, 1e-12)
	assertVec(t, Vec2{-1, 0}, hit.Normal)

	_, ok = TestSweep(Circle{Radius: 1}, Vec2{2, 0}, []Shape{near})
	assert.False(t, ok, "stops short")

	_, ok = TestSweep(Circle{Radius: 1}, Vec2{-10, 0}, []Shape{near})
	assert.False(t, ok, "moves away")

	hit, ok = TestSweep(Circle{Radius: 1}, Vec2{5, 0}, []Shape{Rect{Origin: Vec2{0.5, 0}, HalfExtent: Vec2{1, 1}}})
	require.True(t, ok)
	assert.Zero(t, hit.Fraction)

	_, ok = TestSweep(Circle{Radius: 1}, Vec2{}, []Shape{near})
	assert.False(t, ok)
}

func TestSweepSolverPath(t *testing.T) {
	mover := must(NewOrientedRect(Vec2{0, 0}, Vec2{1, 1}, Vec2{1, 0}))
	require.False(t, IsMovable(mover))

	statics := []Shape{
		Rect{Origin: Vec2{8, 0}, HalfExtent: Vec2{1, 1}},
		Rect{Origin: Vec2{5, 0}, HalfExtent: Vec2{1, 1}},
	}
	hit, ok := TestSweep(mover, Vec2{10, 0}, statics)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, 0.3, hit.Fraction, 1e-12)
	assertVec(t, Vec2{-1, 0}, hit.Normal)

	_, ok = TestSweep(mover, Vec2{10, 0}, []Shape{Rect{Origin: Vec2{5, 5}, HalfExtent: Vec2{1, 1}}})
	assert.False(t, ok)
}

func TestSweepPathsAgree(t *testing.T) {
	mover := Rect{HalfExtent: Vec2{1, 1}}
	static := Rect{Origin: Vec2{6, 1}, HalfExtent: Vec2{1, 1}}
	motion := Vec2{10, 2}

	viaRay, ok := TestSweep(mover, motion, []Shape{static})
	require.True(t, ok)
	viaSolver, ok := sweepSolver(mover, motion, static)
	require.True(t, ok)

	assert.InDelta(t, 0.4, viaRay.Fraction, 1e-9)
	assert.InDelta(t, viaRay.Fraction, viaSolver.Fraction, 1e-9)
	assertVec(t, viaRay.Normal, viaSolver.Normal)
}
