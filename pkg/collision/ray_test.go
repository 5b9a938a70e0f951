package collision

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], 1e-9, "x of %v", got)
	assert.InDelta(t, want[1], got[1], 1e-9, "y of %v", got)
}

func TestRayCircle(t *testing.T) {
	hit, ok := Raycast(Vec2{-2, 0}, Vec2{1, 0}, Circle{Radius: 1})
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 3.0, hit.Exit.Distance, 1e-12)
	assertVec(t, Vec2{-1, 0}, hit.Entry.Point)
	assertVec(t, Vec2{-1, 0}, hit.Entry.Normal)
	assertVec(t, Vec2{1, 0}, hit.Exit.Normal)

	_, ok = Raycast(Vec2{-2, 1.5}, Vec2{1, 0}, Circle{Radius: 1})
	assert.False(t, ok)

	_, ok = Raycast(Vec2{2, 0}, Vec2{1, 0}, Circle{Radius: 1})
	assert.False(t, ok, "circle behind the ray")

	hit, ok = Raycast(Vec2{0, 0}, Vec2{0, 1}, Circle{Radius: 1})
	require.True(t, ok)
	assert.InDelta(t, -1.0, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 1.0, hit.Exit.Distance, 1e-12)
}

func TestRayRect(t *testing.T) {
	rect := must(NewRectMinMax(Vec2{0, 0}, Vec2{2, 1}))
	hit, ok := Raycast(Vec2{-5, 0.5}, Vec2{1, 0}, rect)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 7.0, hit.Exit.Distance, 1e-12)
	assertVec(t, Vec2{-1, 0}, hit.Entry.Normal)
	assertVec(t, Vec2{1, 0}, hit.Exit.Normal)

	hit, ok = Raycast(Vec2{1, 5}, Vec2{0, -1}, rect)
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.Entry.Distance, 1e-12)
	assertVec(t, Vec2{0, 1}, hit.Entry.Normal)

	_, ok = Raycast(Vec2{-5, 1.5}, Vec2{1, 0}, rect)
	assert.False(t, ok)

	d := mustNormalize(Vec2{1, 1})
	hit, ok = Raycast(Vec2{-1, -1}, d, rect)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, hit.Entry.Distance, 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, hit.Exit.Distance, 1e-9)
	assertVec(t, Vec2{0, 1}, hit.Exit.Normal)
}

func TestRayPolygon(t *testing.T) {
	tri := must(NewPolygon(Vec2{0, 0}, Vec2{2, 0}, Vec2{0, 2}))
	hit, ok := Raycast(Vec2{-1, 0.5}, Vec2{1, 0}, tri)
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 2.5, hit.Exit.Distance, 1e-12)
	assertVec(t, Vec2{-1, 0}, hit.Entry.Normal)
	assertVec(t, mustNormalize(Vec2{1, 1}), hit.Exit.Normal)

	_, ok = Raycast(Vec2{-1, 2.5}, Vec2{1, 0}, tri)
	assert.False(t, ok)

	slope := must(NewSlope(Vec2{0, 0}, 2, 2))
	sh, ok := Raycast(Vec2{-1, 0.5}, Vec2{1, 0}, slope)
	require.True(t, ok)
	assert.Equal(t, hit, sh)
}

func TestRayOrientedRect(t *testing.T) {
	diamond := must(NewOrientedRect(Vec2{0, 0}, Vec2{1, 1}, Vec2{1, 1}))
	hit, ok := Raycast(Vec2{-5, 0.5}, Vec2{1, 0}, diamond)
	require.True(t, ok)
	assert.InDelta(t, 5.5-math.Sqrt2, hit.Entry.Distance, 1e-9)
	assert.InDelta(t, 4.5+math.Sqrt2, hit.Exit.Distance, 1e-9)
	assertVec(t, mustNormalize(Vec2{-1, 1}), hit.Entry.Normal)
}

func TestRayRoundedRect(t *testing.T) {
	rounded := must(NewRounded(Rect{HalfExtent: Vec2{1, 1}}, 0.5))

	hit, ok := Raycast(Vec2{-5, 0}, Vec2{1, 0}, rounded)
	require.True(t, ok)
	assert.InDelta(t, 3.5, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 6.5, hit.Exit.Distance, 1e-12)
	assertVec(t, Vec2{-1, 0}, hit.Entry.Normal)

	hit, ok = Raycast(Vec2{-5, 1.25}, Vec2{1, 0}, rounded)
	require.True(t, ok)
	offset := math.Sqrt(0.25 - 0.0625)
	assert.InDelta(t, 4-offset, hit.Entry.Distance, 1e-9)
	assertVec(t, Vec2{-offset / 0.5, 0.5}, hit.Entry.Normal)
	assert.InDelta(t, 6+offset, hit.Exit.Distance, 1e-9)

	_, ok = Raycast(Vec2{-5, 1.6}, Vec2{1, 0}, rounded)
	assert.False(t, ok)

	_, ok = Raycast(Vec2{-5, 1.45}, mustNormalize(Vec2{1, 0.01}), rounded)
	assert.True(t, ok)
}

func TestRayCapsule(t *testing.T) {
	c := Capsule{Start: Vec2{0, 0}, Height: 2, Radius: 1}
	hit, ok := Raycast(Vec2{-5, 1}, Vec2{1, 0}, c)
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 6.0, hit.Exit.Distance, 1e-12)

	hit, ok = Raycast(Vec2{0, 10}, Vec2{0, -1}, c)
	require.True(t, ok)
	assert.InDelta(t, 7.0, hit.Entry.Distance, 1e-12)
	assert.InDelta(t, 11.0, hit.Exit.Distance, 1e-12)
	assertVec(t, Vec2{0, 1}, hit.Entry.Normal)
}

func TestRayLineAndPoint(t *testing.T) {
	l := must(NewLine(Vec2{0, -1}, Vec2{0, 1}))
	hit, ok := Raycast(Vec2{-3, 0}, Vec2{1, 0}, l)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Entry.Distance, 1e-12)
	assert.Equal(t, hit.Entry, hit.Exit)
	assertVec(t, Vec2{-1, 0}, hit.Entry.Normal)

	hit, ok = Raycast(Vec2{0, 0}, Vec2{0, 1}, Point{At: Vec2{0, 2}})
	require.True(t, ok)
	assert.InDelta(t, 2.0, hit.Entry.Distance, 1e-12)
}

func TestRayAlongLine(t *testing.T) {
	tests := []struct {
		name        string
		origin      Vec2
		line        Line
		entry, exit float64
	}{
		{"ahead", Vec2{0, 0}, must(NewLine(Vec2{5, 0}, Vec2{6, 0})), 5, 6},
		{"ahead reversed", Vec2{0, 0}, must(NewLine(Vec2{6, 0}, Vec2{5, 0})), 5, 6},
		{"origin on segment", Vec2{5.5, 0}, must(NewLine(Vec2{5, 0}, Vec2{6, 0})), -0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Raycast(tt.origin, Vec2{1, 0}, tt.line)
			require.True(t, ok)
			assert.InDelta(t, tt.entry, hit.Entry.Distance, 1e-12)
			assert.InDelta(t, tt.exit, hit.Exit.Distance, 1e-12)
			assertVec(t, tt.origin.Add(Vec2{tt.entry, 0}), hit.Entry.Point)
			assertVec(t, Vec2{-1, 0}, hit.Entry.Normal)
			assertVec(t, Vec2{1, 0}, hit.Exit.Normal)
		})
	}

	_, ok := Raycast(Vec2{0, 0}, Vec2{1, 0}, must(NewLine(Vec2{5, 1}, Vec2{6, 1})))
	assert.False(t, ok, "parallel line off the ray")
	_, ok = Raycast(Vec2{7, 0}, Vec2{1, 0}, must(NewLine(Vec2{5, 0}, Vec2{6, 0})))
	assert.False(t, ok, "segment behind the origin")
}

func TestRayEntryBeforeExit(t *testing.T) {
	dirs := []Vec2{{1, 0}, {0, 1}, mustNormalize(Vec2{1, 2}), mustNormalize(Vec2{-3, 1}), mustNormalize(Vec2{-1, -1})}
	for _, s := range catalog(t) {
		target, ok := s.(RaycastTarget)
		if !ok {
			continue
		}
		for _, d := range dirs {
			hit, ok := target.Raycast(NewRayCaster(Vec2{0.1, 0.2}.Sub(d.Mul(20)), d))
			if ok {
				assert.LessOrEqual(t, hit.Entry.Distance, hit.Exit.Distance, "%s along %v", s.Kind(), d)
			}
		}
	}
}

func TestRayRejectsUnnormalizedDirection(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnnormalizedDirection))
	}()
	NewRayCaster(Vec2{}, Vec2{2, 0})
}
