package collision

// Slope is a right triangle with its square corner at Origin and legs Run
// along X and Rise along Y. Either leg may be negative.
type Slope struct {
	Origin Vec2    `json:"origin"`
	Run    float64 `json:"run"`
	Rise   float64 `json:"rise"`
}

func NewSlope(origin Vec2, run, rise float64) (Slope, error) {
	if !isFiniteVec(origin) {
		return Slope{}, ErrInvalidPosition
	}
	if !isFinite(run) || !isFinite(rise) || run == 0 || rise == 0 {
		return Slope{}, ErrDegenerateSlope
	}
	return Slope{Origin: origin, Run: run, Rise: rise}, nil
}

// NewRamp builds the slope whose sloped face runs length units along
// direction, from the rise corner down to the run corner.
func NewRamp(origin, direction Vec2, length float64) (Slope, error) {
	if !isFiniteVec(direction) || direction.Len() <= epsilon {
		return Slope{}, ErrZeroDirection
	}
	if !isFinite(length) || length <= 0 {
		return Slope{}, ErrInvalidExtent
	}
	size := Vec2{direction[0], -direction[1]}.Mul(length / direction.Len())
	return NewSlope(origin, size[0], size[1])
}

func (Slope) Kind() Kind { return KindSlope }

// points returns the vertices in counter-clockwise order.
func (s Slope) points() [3]Vec2 {
	run := s.Origin.Add(Vec2{s.Run, 0})
	rise := s.Origin.Add(Vec2{0, s.Rise})
	if (s.Run > 0) == (s.Rise > 0) {
		return [3]Vec2{s.Origin, run, rise}
	}
	return [3]Vec2{s.Origin, rise, run}
}

// Normal is the outward unit normal of the sloped face.
func (s Slope) Normal() Vec2 {
	return mustNormalize(Vec2{s.Rise, s.Run}).Mul(sign(s.Run) * sign(s.Rise))
}

func (s Slope) ProjectOnAxis(axis Vec2) Projection {
	pts := s.points()
	return projectPoints(axis, pts[:])
}

func (s Slope) AppendPoints(dst []Vec2) []Vec2 {
	pts := s.points()
	return append(dst, pts[:]...)
}

func (s Slope) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	n := s.Normal()
	return append(axes, axisX, axisY, n), append(projections,
		s.ProjectOnAxis(axisX), s.ProjectOnAxis(axisY), s.ProjectOnAxis(n))
}

func (Slope) AppendAxesDerived(_ []Vec2, dst []Vec2) []Vec2 {
	return dst
}

func (s Slope) WithOffset(delta Vec2) Shape {
	s.Origin = s.Origin.Add(delta)
	return s
}

func (Slope) CanSmearProjection() bool { return true }

func (s Slope) Bounds() Rect {
	pts := s.points()
	return boundsOfPoints(pts[:])
}

func (s Slope) appendLoop(points, normals []Vec2) ([]Vec2, []Vec2) {
	pts := s.points()
	for i := range pts {
		normals = append(normals, edgeNormal(pts[i], pts[(i+1)%len(pts)]))
	}
	return append(points, pts[:]...), normals
}

func (s Slope) Raycast(r *RayCaster) (RayHit, bool) {
	var buf [6]Vec2
	points, normals := s.appendLoop(buf[:0:3], buf[3:3:6])
	return r.polygon(points, normals)
}

func (s Slope) Outline() DebugShape {
	points, normals := s.appendLoop(nil, nil)
	return DebugShape{Kind: DebugPolygon, Points: points, Normals: normals}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
