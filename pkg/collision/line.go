package collision

// Line is a segment between two distinct points.
type Line struct {
	Start Vec2 `json:"start"`
	End   Vec2 `json:"end"`
}

func NewLine(start, end Vec2) (Line, error) {
	if !isFiniteVec(start) || !isFiniteVec(end) {
		return Line{}, ErrInvalidPosition
	}
	if _, ok := axisBetween(start, end); !ok {
		return Line{}, ErrDegenerateLine
	}
	return Line{Start: start, End: end}, nil
}

func (Line) Kind() Kind { return KindLine }

// Direction is the unit vector from Start to End.
func (l Line) Direction() Vec2 {
	return mustNormalize(l.End.Sub(l.Start))
}

// Normal is the right-hand normal of the segment.
func (l Line) Normal() Vec2 {
	return perp(l.Direction()).Mul(-1)
}

func (l Line) ProjectOnAxis(axis Vec2) Projection {
	return NewProjection(axis.Dot(l.Start), axis.Dot(l.End))
}

func (l Line) AppendPoints(dst []Vec2) []Vec2 {
	return append(dst, l.Start, l.End)
}

func (l Line) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	d, n := l.Direction(), l.Normal()
	return append(axes, n, d),
		append(projections, l.ProjectOnAxis(n), l.ProjectOnAxis(d))
}

func (Line) AppendAxesDerived(_ []Vec2, dst []Vec2) []Vec2 {
	return dst
}

func (l Line) WithOffset(delta Vec2) Shape {
	return Line{Start: l.Start.Add(delta), End: l.End.Add(delta)}
}

func (Line) CanSmearProjection() bool { return true }

func (l Line) Bounds() Rect {
	return boundsOfPoints([]Vec2{l.Start, l.End})
}

func (l Line) appendLoop(points, normals []Vec2) ([]Vec2, []Vec2) {
	n := l.Normal()
	return append(points, l.Start, l.End), append(normals, n, n.Mul(-1))
}

// Raycast reports a crossing with Entry equal to Exit. A ray running along
// the segment hits it from the nearer endpoint to the farther one.
func (l Line) Raycast(r *RayCaster) (RayHit, bool) {
	if hit, ok := r.alongSegment(l.Start, l.End); ok {
		return hit, true
	}
	hit, ok := r.segment(l.Start, l.End, l.Normal())
	if !ok {
		return RayHit{}, false
	}
	if hit.Normal.Dot(r.direction) > 0 {
		hit.Normal = hit.Normal.Mul(-1)
	}
	return RayHit{Entry: hit, Exit: hit}, true
}

func (l Line) Outline() DebugShape {
	points, normals := l.appendLoop(nil, nil)
	return DebugShape{Kind: DebugPolygon, Points: points, Normals: normals}
}
