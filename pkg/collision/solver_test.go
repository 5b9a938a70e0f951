package collision

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverSeparatedRects(t *testing.T) {
	a := must(NewRectMinMax(Vec2{1, 1}, Vec2{2, 2}))
	b := must(NewRectMinMax(Vec2{3, 3}, Vec2{4, 4}))

	contacts, ok := NewSolver().Test(a, b, ModeRequireSeparate, nil)
	require.True(t, ok)
	require.NotEmpty(t, contacts)
	assert.Equal(t, axisX, contacts[0].Axis)
	assert.InDelta(t, 1.0, contacts[0].PenetrationMin, 1e-12)
	assert.InDelta(t, 3.0, contacts[0].PenetrationMax, 1e-12)

	_, ok = TestOverlap(a, b, ModeRequireOverlap)
	assert.False(t, ok)
}

func TestSolverOverlappingRects(t *testing.T) {
	a := must(NewRectMinMax(Vec2{2.5, 2.5}, Vec2{3.5, 3.5}))
	b := must(NewRectMinMax(Vec2{3, 3}, Vec2{4, 4}))

	contacts, ok := TestOverlap(a, b, ModeRequireOverlap)
	require.True(t, ok)
	assert.Equal(t, axisX, contacts[0].Axis)
	assert.InDelta(t, -0.5, contacts[0].PenetrationMin, 1e-12)
	assert.InDelta(t, 1.5, contacts[0].PenetrationMax, 1e-12)

	_, ok = TestOverlap(a, b, ModeRequireSeparate)
	assert.False(t, ok)
}

func TestSolverModes(t *testing.T) {
	a := Rect{Origin: Vec2{0, 0}, HalfExtent: Vec2{1, 1}}
	apart := Rect{Origin: Vec2{5, 0}, HalfExtent: Vec2{1, 1}}
	s := NewSolver()

	t.Run("require overlap stops at first separating axis", func(t *testing.T) {
		contacts, ok := s.Test(a, apart, ModeRequireOverlap, nil)
		assert.False(t, ok)
		assert.Len(t, contacts, 1)
	})

	t.Run("strict discards partial results", func(t *testing.T) {
		prefix := []Contact{{Axis: axisY}}
		down := Rect{Origin: Vec2{0, 5}, HalfExtent: Vec2{1, 1}}
		contacts, ok := s.Test(a, down, ModeRequireOverlapStrict, prefix)
		assert.False(t, ok)
		assert.Equal(t, prefix, contacts)
	})

	t.Run("require separate stops at first penetrating axis", func(t *testing.T) {
		contacts, ok := s.Test(a, apart, ModeRequireSeparate, nil)
		assert.False(t, ok)
		assert.Len(t, contacts, 2)
		assert.True(t, contacts[1].IsPenetration())
	})

	t.Run("all tests every axis", func(t *testing.T) {
		contacts, ok := s.Test(a, apart, ModeAll, nil)
		assert.False(t, ok)
		assert.Len(t, contacts, 6)

		contacts, ok = s.Test(a, a.WithOffset(Vec2{0.5, 0.5}), ModeAll, contacts[:0])
		assert.True(t, ok)
		assert.Len(t, contacts, 6)
		mtv, ok := Contacts(contacts).MTV()
		require.True(t, ok)
		assert.InDelta(t, 1.5, mtv.Len(), 1e-12)
	})
}

type overlapCase struct {
	name    string
	a, b    Shape
	overlap bool
}

func overlapCases() []overlapCase {
	unit := Rect{HalfExtent: Vec2{1, 1}}
	diamond := must(NewOrientedRect(Vec2{0, 0}, Vec2{1, 1}, Vec2{1, 1}))
	slope := must(NewSlope(Vec2{0, 0}, 4, 4))
	hex := must(NewPolygon(Vec2{2, 0}, Vec2{1, 1.7}, Vec2{-1, 1.7}, Vec2{-2, 0}, Vec2{-1, -1.7}, Vec2{1, -1.7}))
	capsule := must(NewCapsule(Vec2{0, -1}, 2, 0.5))
	return []overlapCase{
		{"circle circle apart", Circle{Radius: 1}, Circle{Origin: Vec2{1.5, 1.5}, Radius: 1}, false},
		{"circle circle overlapping", Circle{Radius: 1}, Circle{Origin: Vec2{1.2, 1.2}, Radius: 1}, true},
		{"circle near rect corner", Circle{Radius: 1}, must(NewRectMinMax(Vec2{0.8, 0.8}, Vec2{2, 2})), false},
		{"circle inside rect corner", Circle{Radius: 1}, must(NewRectMinMax(Vec2{0.6, 0.6}, Vec2{2, 2})), true},
		{"circle beyond slope face", Circle{Origin: Vec2{3, 3}, Radius: 1}, slope, false},
		{"circle on slope face", Circle{Origin: Vec2{2.5, 2.5}, Radius: 1}, slope, true},
		{"circle near slope corner", Circle{Origin: Vec2{-0.8, -0.8}, Radius: 1}, slope, false},
		{"rect diamond apart", unit.WithOffset(Vec2{1.8, 1.8}), diamond, false},
		{"rect diamond touching tip", unit.WithOffset(Vec2{2.3, 0}), diamond, true},
		{"capsule capsule apart", capsule, capsule.WithOffset(Vec2{0.8, 2.8}), false},
		{"capsule capsule overlapping", capsule, capsule.WithOffset(Vec2{0.8, 2.1}), true},
		{"capsule rect corner apart", capsule, must(NewRectMinMax(Vec2{0.4, 1.4}, Vec2{2, 2})), false},
		{"capsule rect corner overlapping", capsule, must(NewRectMinMax(Vec2{0.3, 1.2}, Vec2{2, 2})), true},
		{"point in circle", Point{At: Vec2{0.5, 0.5}}, Circle{Radius: 1}, true},
		{"point outside circle", Point{At: Vec2{0.8, 0.8}}, Circle{Radius: 1}, false},
		{"point by capsule", Point{At: Vec2{0.4, 1.4}}, capsule, false},
		{"line through circle", must(NewLine(Vec2{-3, 0.5}, Vec2{3, 0.5})), Circle{Radius: 1}, true},
		{"line past circle", must(NewLine(Vec2{0.9, 3}, Vec2{3, 0.9})), Circle{Radius: 1}, false},
		{"line past capsule", must(NewLine(Vec2{0, 2.6}, Vec2{2, 1})), capsule, false},
		{"hexagon rect", hex, unit.WithOffset(Vec2{2.6, 1.8}), false},
		{"hexagon circle", hex, Circle{Origin: Vec2{1.8, 1}, Radius: 0.5}, true},
		{"rounded rect corner apart", must(NewRounded(unit, 0.5)), Point{At: Vec2{1.4, 1.4}}, false},
		{"rounded rect corner inside", must(NewRounded(unit, 0.5)), Point{At: Vec2{1.3, 1.3}}, true},
		{"rounded slope circle", must(NewRounded(slope, 0.5)), Circle{Origin: Vec2{-0.9, -0.9}, Radius: 0.7}, false},
	}
}

func TestOverlapVerdicts(t *testing.T) {
	for _, tc := range overlapCases() {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := TestOverlap(tc.a, tc.b, ModeAll)
			assert.Equal(t, tc.overlap, ok)
			_, ok = TestOverlap(tc.a, tc.b, ModeRequireOverlap)
			assert.Equal(t, tc.overlap, ok)
		})
	}
}

func TestOverlapSymmetry(t *testing.T) {
	for _, tc := range overlapCases() {
		t.Run(tc.name, func(t *testing.T) {
			ab, okAB := TestOverlap(tc.a, tc.b, ModeAll)
			ba, okBA := TestOverlap(tc.b, tc.a, ModeAll)
			assert.Equal(t, okAB, okBA)
			if okAB {
				mab, _ := ab.MinPenetration()
				mba, _ := ba.MinPenetration()
				assert.InDelta(t, abs(mab.Depth()), abs(mba.Depth()), 1e-9)
			}
		})
	}
}

func TestOverlapCatalogPairs(t *testing.T) {
	shapes := catalog(t)
	s := NewSolver()
	var contacts []Contact
	for _, a := range shapes {
		for _, b := range shapes {
			t.Run(fmt.Sprintf("%s/%s", a.Kind(), b.Kind()), func(t *testing.T) {
				var ok bool
				contacts, ok = s.Test(a, b, ModeAll, contacts[:0])
				assert.LessOrEqual(t, len(contacts), 2+2*ScratchCapacity)
				_, okBA := s.Test(b, a, ModeAll, nil)
				assert.Equal(t, ok, okBA)
			})
		}
	}
}

func TestDerivedAxesSkipCoincidentPoints(t *testing.T) {
	c := Circle{Origin: Vec2{1, 1}, Radius: 1}
	axes := c.AppendAxesDerived([]Vec2{{1, 1}, {2, 1}}, nil)
	require.Len(t, axes, 1)
	assert.Equal(t, axisX, axes[0])

	assert.NotPanics(t, func() {
		_, ok := TestOverlap(c, Rounded{Inner: Rect{Origin: Vec2{1, 1}}, Radius: 0.5}, ModeAll)
		assert.True(t, ok)
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
