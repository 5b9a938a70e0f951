package collision

import (
	"fmt"
	"sort"
)

// IsMovable reports whether s may be the moving side of Combine.
func IsMovable(s Shape) bool {
	switch uncached(s).(type) {
	case Point, Circle, Rect, Capsule:
		return true
	default:
		return false
	}
}

// Center is the reference point of a movable shape; rays for combined
// shapes start there.
func Center(moving Shape) (Vec2, bool) {
	switch m := uncached(moving).(type) {
	case Point:
		return m.At, true
	case Circle:
		return m.Origin, true
	case Rect:
		return m.Origin, true
	case Capsule:
		return m.Center(), true
	default:
		return Vec2{}, false
	}
}

// Combine returns the Minkowski sum of static and moving, with moving
// centred on the origin, so that moving overlaps static exactly when
// Center(moving) lies inside the result. Moving must satisfy IsMovable and
// the result is generally not movable itself, so Combine does not compose.
// Cached wrappers on either side are looked through.
func Combine(moving, static Shape) (Shape, error) {
	moving, static = uncached(moving), uncached(static)
	half, movingRadius, ok := movingParts(moving)
	if !ok {
		return nil, fmt.Errorf("moving %s: %w", kindOf(moving), ErrUnsupportedCombination)
	}
	core, staticRadius, ok := staticParts(static)
	if !ok {
		return nil, fmt.Errorf("static %s: %w", kindOf(static), ErrUnsupportedCombination)
	}

	sum, err := sumWithBox(core, half)
	if err != nil {
		return nil, fmt.Errorf("%s with %s: %w", kindOf(moving), kindOf(static), err)
	}
	return inflate(sum, movingRadius+staticRadius), nil
}

// movingParts splits a movable shape into a centred box core and a radius.
func movingParts(s Shape) (half Vec2, radius float64, ok bool) {
	switch m := s.(type) {
	case Point:
		return Vec2{}, 0, true
	case Circle:
		return Vec2{}, m.Radius, true
	case Rect:
		return m.HalfExtent, 0, true
	case Capsule:
		return Vec2{0, m.Height / 2}, m.Radius, true
	default:
		return Vec2{}, 0, false
	}
}

// staticParts splits a static shape into a polygonal or point core and a radius.
func staticParts(s Shape) (core Shape, radius float64, ok bool) {
	switch t := s.(type) {
	case Point, Line, Rect, OrientedRect, Slope, Polygon:
		return t, 0, true
	case Circle:
		return Point{At: t.Origin}, t.Radius, true
	case Capsule:
		return Rect{Origin: t.Center(), HalfExtent: Vec2{0, t.Height / 2}}, t.Radius, true
	case Rounded:
		return t.Inner, t.Radius, true
	default:
		return nil, 0, false
	}
}

func sumWithBox(core Shape, half Vec2) (Shape, error) {
	if half == (Vec2{}) {
		return core, nil
	}
	switch c := core.(type) {
	case Point:
		return Rect{Origin: c.At, HalfExtent: half}, nil
	case Rect:
		return Rect{Origin: c.Origin, HalfExtent: c.HalfExtent.Add(half)}, nil
	default:
		var buf [4 * MaxPolygonVertices]Vec2
		var coreBuf [MaxPolygonVertices]Vec2
		var boxBuf [4]Vec2
		points := buf[:0]
		corners := Rect{HalfExtent: half}.AppendPoints(boxBuf[:0])
		for _, p := range core.AppendPoints(coreBuf[:0]) {
			for _, q := range corners {
				points = append(points, p.Add(q))
			}
		}
		return shapeFromHull(convexHull(points))
	}
}

// inflate rounds core by radius, preferring the simplest exact kind.
func inflate(core Shape, radius float64) Shape {
	if radius <= 0 {
		return core
	}
	switch c := core.(type) {
	case Point:
		return Circle{Origin: c.At, Radius: radius}
	case Rect:
		if c.HalfExtent[0] == 0 {
			return Capsule{Start: c.Origin.Sub(Vec2{0, c.HalfExtent[1]}), Height: 2 * c.HalfExtent[1], Radius: radius}
		}
	}
	return Rounded{Inner: core, Radius: radius}
}

func shapeFromHull(hull []Vec2) (Shape, error) {
	switch n := len(hull); {
	case n == 1:
		return Point{At: hull[0]}, nil
	case n == 2:
		return Line{Start: hull[0], End: hull[1]}, nil
	case n > MaxPolygonVertices:
		return nil, fmt.Errorf("%d hull vertices: %w", n, ErrUnsupportedCombination)
	default:
		return NewPolygon(hull...)
	}
}

// convexHull returns the counter-clockwise hull of points without collinear
// vertices. points is reordered in place.
func convexHull(points []Vec2) []Vec2 {
	sort.Slice(points, func(i, j int) bool {
		if points[i][0] != points[j][0] {
			return points[i][0] < points[j][0]
		}
		return points[i][1] < points[j][1]
	})
	if len(points) < 3 {
		return dedupe(points)
	}

	hull := make([]Vec2, 0, 2*len(points))
	for _, p := range points {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(points) - 2; i >= 0; i-- {
		p := points[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return dedupe(hull[:len(hull)-1])
}

func turn(a, b, c Vec2) float64 {
	return perpDot(b.Sub(a), c.Sub(b))
}

func dedupe(points []Vec2) []Vec2 {
	out := points[:0]
	for _, p := range points {
		if len(out) > 0 && p.Sub(out[len(out)-1]).Len() <= epsilon {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Sub(out[len(out)-1]).Len() <= epsilon {
		out = out[:len(out)-1]
	}
	return out
}

// NewBoxy returns the Minkowski sum of a polygonal shape and an axis-aligned
// box centred on the origin, e.g. an oriented rect or slope grown by a box.
func NewBoxy(core Shape, halfExtent Vec2) (Shape, error) {
	if _, ok := core.(polygonal); !ok {
		return nil, fmt.Errorf("boxy %s: %w", kindOf(core), ErrUnsupportedInner)
	}
	if !isFiniteVec(halfExtent) || halfExtent[0] < 0 || halfExtent[1] < 0 {
		return nil, ErrInvalidExtent
	}
	return sumWithBox(core, halfExtent)
}
