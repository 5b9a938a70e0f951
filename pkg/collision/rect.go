package collision

import "math"

// Rect is an axis-aligned box centred on Origin.
type Rect struct {
	Origin     Vec2 `json:"origin"`
	HalfExtent Vec2 `json:"half_extent"`
}

func NewRect(origin, halfExtent Vec2) (Rect, error) {
	if !isFiniteVec(origin) {
		return Rect{}, ErrInvalidPosition
	}
	if !isFiniteVec(halfExtent) || halfExtent[0] < 0 || halfExtent[1] < 0 {
		return Rect{}, ErrInvalidExtent
	}
	return Rect{Origin: origin, HalfExtent: halfExtent}, nil
}

// NewRectMinMax builds a rect from its lower-left and upper-right corners.
func NewRectMinMax(min, max Vec2) (Rect, error) {
	if !isFiniteVec(min) || !isFiniteVec(max) {
		return Rect{}, ErrInvalidPosition
	}
	if max[0] < min[0] || max[1] < min[1] {
		return Rect{}, ErrInvalidExtent
	}
	return rectFromMinMax(min, max), nil
}

func rectFromMinMax(min, max Vec2) Rect {
	half := max.Sub(min).Mul(0.5)
	return Rect{Origin: min.Add(half), HalfExtent: half}
}

func (Rect) Kind() Kind { return KindRect }

func (r Rect) Min() Vec2 { return r.Origin.Sub(r.HalfExtent) }
func (r Rect) Max() Vec2 { return r.Origin.Add(r.HalfExtent) }

// Merged returns the smallest rect covering r and o.
func (r Rect) Merged(o Rect) Rect {
	min, max := r.Min(), r.Max()
	omin, omax := o.Min(), o.Max()
	return rectFromMinMax(
		Vec2{math.Min(min[0], omin[0]), math.Min(min[1], omin[1])},
		Vec2{math.Max(max[0], omax[0]), math.Max(max[1], omax[1])},
	)
}

// Intersects is the plain AABB overlap check; touching counts.
func (r Rect) Intersects(o Rect) bool {
	return r.ProjectOnAxis(axisX).Overlaps(o.ProjectOnAxis(axisX)) &&
		r.ProjectOnAxis(axisY).Overlaps(o.ProjectOnAxis(axisY))
}

func (r Rect) ProjectOnAxis(axis Vec2) Projection {
	c := axis.Dot(r.Origin)
	e := math.Abs(axis[0])*r.HalfExtent[0] + math.Abs(axis[1])*r.HalfExtent[1]
	return Projection{Min: c - e, Max: c + e}
}

func (r Rect) AppendPoints(dst []Vec2) []Vec2 {
	min, max := r.Min(), r.Max()
	return append(dst, min, Vec2{max[0], min[1]}, max, Vec2{min[0], max[1]})
}

func (r Rect) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	return append(axes, axisX, axisY),
		append(projections, r.ProjectOnAxis(axisX), r.ProjectOnAxis(axisY))
}

func (Rect) AppendAxesDerived(_ []Vec2, dst []Vec2) []Vec2 {
	return dst
}

func (r Rect) WithOffset(delta Vec2) Shape {
	return Rect{Origin: r.Origin.Add(delta), HalfExtent: r.HalfExtent}
}

func (Rect) CanSmearProjection() bool { return true }

func (r Rect) Bounds() Rect { return r }

func (r Rect) appendLoop(points, normals []Vec2) ([]Vec2, []Vec2) {
	return r.AppendPoints(points), append(normals, Vec2{0, -1}, Vec2{1, 0}, Vec2{0, 1}, Vec2{-1, 0})
}

func (r Rect) Raycast(rc *RayCaster) (RayHit, bool) {
	return rc.rect(r.Min(), r.Max())
}

func (r Rect) Outline() DebugShape {
	points, normals := r.appendLoop(nil, nil)
	return DebugShape{Kind: DebugPolygon, Points: points, Normals: normals}
}
