package collision

import "math"

// OrientedRect is a box centred on Origin whose local X axis is Direction.
type OrientedRect struct {
	Origin     Vec2 `json:"origin"`
	HalfExtent Vec2 `json:"half_extent"`
	Direction  Vec2 `json:"direction"`
}

// NewOrientedRect normalizes direction; a zero direction is rejected.
func NewOrientedRect(origin, halfExtent, direction Vec2) (OrientedRect, error) {
	if !isFiniteVec(origin) {
		return OrientedRect{}, ErrInvalidPosition
	}
	if !isFiniteVec(halfExtent) || halfExtent[0] < 0 || halfExtent[1] < 0 {
		return OrientedRect{}, ErrInvalidExtent
	}
	if !isFiniteVec(direction) || direction.Len() <= epsilon {
		return OrientedRect{}, ErrZeroDirection
	}
	return OrientedRect{Origin: origin, HalfExtent: halfExtent, Direction: direction.Normalize()}, nil
}

func (OrientedRect) Kind() Kind { return KindOrientedRect }

func (r OrientedRect) axes() (Vec2, Vec2) {
	return r.Direction, perp(r.Direction)
}

func (r OrientedRect) ProjectOnAxis(axis Vec2) Projection {
	u, v := r.axes()
	c := axis.Dot(r.Origin)
	e := math.Abs(axis.Dot(u))*r.HalfExtent[0] + math.Abs(axis.Dot(v))*r.HalfExtent[1]
	return Projection{Min: c - e, Max: c + e}
}

func (r OrientedRect) AppendPoints(dst []Vec2) []Vec2 {
	u, v := r.axes()
	u, v = u.Mul(r.HalfExtent[0]), v.Mul(r.HalfExtent[1])
	return append(dst,
		r.Origin.Sub(u).Sub(v),
		r.Origin.Add(u).Sub(v),
		r.Origin.Add(u).Add(v),
		r.Origin.Sub(u).Add(v),
	)
}

func (r OrientedRect) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	u, v := r.axes()
	cu, cv := u.Dot(r.Origin), v.Dot(r.Origin)
	return append(axes, u, v), append(projections,
		Projection{Min: cu - r.HalfExtent[0], Max: cu + r.HalfExtent[0]},
		Projection{Min: cv - r.HalfExtent[1], Max: cv + r.HalfExtent[1]},
	)
}

func (OrientedRect) AppendAxesDerived(_ []Vec2, dst []Vec2) []Vec2 {
	return dst
}

func (r OrientedRect) WithOffset(delta Vec2) Shape {
	r.Origin = r.Origin.Add(delta)
	return r
}

func (OrientedRect) CanSmearProjection() bool { return false }

func (r OrientedRect) Bounds() Rect {
	return Rect{Origin: r.Origin, HalfExtent: Vec2{
		r.ProjectOnAxis(axisX).Length() / 2,
		r.ProjectOnAxis(axisY).Length() / 2,
	}}
}

func (r OrientedRect) appendLoop(points, normals []Vec2) ([]Vec2, []Vec2) {
	u, v := r.axes()
	return r.AppendPoints(points), append(normals, v.Mul(-1), u, v, u.Mul(-1))
}

func (r OrientedRect) Raycast(rc *RayCaster) (RayHit, bool) {
	var buf [8]Vec2
	points, normals := r.appendLoop(buf[:0:4], buf[4:4:8])
	return rc.polygon(points, normals)
}

func (r OrientedRect) Outline() DebugShape {
	points, normals := r.appendLoop(nil, nil)
	return DebugShape{Kind: DebugPolygon, Points: points, Normals: normals}
}
