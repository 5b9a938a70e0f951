package collision

import "math"

// Capsule is a vertical segment from Start to Start+(0, Height) inflated by Radius.
type Capsule struct {
	Start  Vec2    `json:"start"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

func NewCapsule(start Vec2, height, radius float64) (Capsule, error) {
	if !isFiniteVec(start) {
		return Capsule{}, ErrInvalidPosition
	}
	if !isFinite(height) || height < 0 {
		return Capsule{}, ErrInvalidExtent
	}
	if !isFinite(radius) || radius < 0 {
		return Capsule{}, ErrInvalidRadius
	}
	return Capsule{Start: start, Height: height, Radius: radius}, nil
}

func (Capsule) Kind() Kind { return KindCapsule }

func (c Capsule) End() Vec2 {
	return c.Start.Add(Vec2{0, c.Height})
}

func (c Capsule) Center() Vec2 {
	return c.Start.Add(Vec2{0, c.Height / 2})
}

// closest returns the point of the core segment nearest to p.
func (c Capsule) closest(p Vec2) Vec2 {
	return Vec2{c.Start[0], math.Min(math.Max(p[1], c.Start[1]), c.Start[1]+c.Height)}
}

func (c Capsule) ProjectOnAxis(axis Vec2) Projection {
	return NewProjection(axis.Dot(c.Start), axis.Dot(c.End())).Inflated(c.Radius)
}

func (c Capsule) AppendPoints(dst []Vec2) []Vec2 {
	return append(dst, c.Start, c.End())
}

func (c Capsule) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	return append(axes, axisX), append(projections, c.ProjectOnAxis(axisX))
}

func (c Capsule) AppendAxesDerived(other []Vec2, dst []Vec2) []Vec2 {
	for _, p := range other {
		dst = appendAxisBetween(dst, c.closest(p), p)
	}
	return dst
}

func (c Capsule) WithOffset(delta Vec2) Shape {
	c.Start = c.Start.Add(delta)
	return c
}

func (Capsule) CanSmearProjection() bool { return false }

func (c Capsule) Bounds() Rect {
	return Rect{Origin: c.Center(), HalfExtent: Vec2{c.Radius, c.Height/2 + c.Radius}}
}

func (c Capsule) Raycast(r *RayCaster) (RayHit, bool) {
	if c.Height <= epsilon {
		return r.circle(c.Start, c.Radius)
	}
	points := [2]Vec2{c.Start, c.End()}
	normals := [2]Vec2{{1, 0}, {-1, 0}}
	return r.roundedPolygon(points[:], normals[:], c.Radius)
}

func (c Capsule) Outline() DebugShape {
	return DebugShape{
		Kind:    DebugRoundedPolygon,
		Points:  []Vec2{c.Start, c.End()},
		Normals: []Vec2{{1, 0}, {-1, 0}},
		Radius:  c.Radius,
	}
}
