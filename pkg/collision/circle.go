package collision

// Circle is a disk around Origin.
type Circle struct {
	Origin Vec2    `json:"origin"`
	Radius float64 `json:"radius"`
}

func NewCircle(origin Vec2, radius float64) (Circle, error) {
	if !isFiniteVec(origin) {
		return Circle{}, ErrInvalidPosition
	}
	if !isFinite(radius) || radius < 0 {
		return Circle{}, ErrInvalidRadius
	}
	return Circle{Origin: origin, Radius: radius}, nil
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) ProjectOnAxis(axis Vec2) Projection {
	v := axis.Dot(c.Origin)
	return Projection{Min: v - c.Radius, Max: v + c.Radius}
}

func (c Circle) AppendPoints(dst []Vec2) []Vec2 {
	return append(dst, c.Origin)
}

// AppendAxes appends nothing; a circle has no faces.
func (Circle) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	return axes, projections
}

func (c Circle) AppendAxesDerived(other []Vec2, dst []Vec2) []Vec2 {
	for _, p := range other {
		dst = appendAxisBetween(dst, c.Origin, p)
	}
	return dst
}

func (c Circle) WithOffset(delta Vec2) Shape {
	return Circle{Origin: c.Origin.Add(delta), Radius: c.Radius}
}

func (Circle) CanSmearProjection() bool { return false }

func (c Circle) Bounds() Rect {
	return Rect{Origin: c.Origin, HalfExtent: Vec2{c.Radius, c.Radius}}
}

func (c Circle) Raycast(r *RayCaster) (RayHit, bool) {
	return r.circle(c.Origin, c.Radius)
}

func (c Circle) Outline() DebugShape {
	return DebugShape{Kind: DebugCircle, Origin: c.Origin, Radius: c.Radius}
}

func circleNormal(p, center Vec2, radius float64, fallback Vec2) Vec2 {
	if radius <= epsilon {
		return fallback
	}
	return p.Sub(center).Mul(1 / radius)
}
