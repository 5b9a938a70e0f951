package collision

import "math"

// Point is a single location with no extent.
type Point struct {
	At Vec2 `json:"at"`
}

func NewPoint(at Vec2) (Point, error) {
	if !isFiniteVec(at) {
		return Point{}, ErrInvalidPosition
	}
	return Point{At: at}, nil
}

func (Point) Kind() Kind { return KindPoint }

func (p Point) ProjectOnAxis(axis Vec2) Projection {
	v := axis.Dot(p.At)
	return Projection{Min: v, Max: v}
}

func (p Point) AppendPoints(dst []Vec2) []Vec2 {
	return append(dst, p.At)
}

func (p Point) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	return append(axes, axisX, axisY),
		append(projections, p.ProjectOnAxis(axisX), p.ProjectOnAxis(axisY))
}

func (Point) AppendAxesDerived(_ []Vec2, dst []Vec2) []Vec2 {
	return dst
}

func (p Point) WithOffset(delta Vec2) Shape {
	return Point{At: p.At.Add(delta)}
}

func (Point) CanSmearProjection() bool { return true }

func (p Point) Bounds() Rect {
	return Rect{Origin: p.At}
}

func (p Point) Raycast(r *RayCaster) (RayHit, bool) {
	along, across := r.local(p.At)
	if math.Abs(across) > epsilon {
		return RayHit{}, false
	}
	hit := r.intersection(along, r.direction.Mul(-1))
	return RayHit{Entry: hit, Exit: hit}, true
}

func (p Point) Outline() DebugShape {
	return DebugShape{Kind: DebugCircle, Origin: p.At}
}
