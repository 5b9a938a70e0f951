package collision

import "fmt"

// Rounded is a polygonal shape inflated by Radius in every direction.
type Rounded struct {
	Inner  Shape   `json:"inner"`
	Radius float64 `json:"radius"`
}

// NewRounded accepts Line, Rect, OrientedRect, Slope and Polygon inner shapes.
func NewRounded(inner Shape, radius float64) (Rounded, error) {
	if _, ok := inner.(polygonal); !ok {
		return Rounded{}, fmt.Errorf("inner %s: %w", kindOf(inner), ErrUnsupportedInner)
	}
	if !isFinite(radius) || radius < 0 {
		return Rounded{}, ErrInvalidRadius
	}
	return Rounded{Inner: inner, Radius: radius}, nil
}

func (Rounded) Kind() Kind { return KindRounded }

func (r Rounded) loop(points, normals []Vec2) ([]Vec2, []Vec2) {
	return r.Inner.(polygonal).appendLoop(points, normals)
}

func (r Rounded) ProjectOnAxis(axis Vec2) Projection {
	return r.Inner.ProjectOnAxis(axis).Inflated(r.Radius)
}

func (r Rounded) AppendPoints(dst []Vec2) []Vec2 {
	return r.Inner.AppendPoints(dst)
}

func (r Rounded) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	start := len(projections)
	axes, projections = r.Inner.AppendAxes(axes, projections)
	for i := start; i < len(projections); i++ {
		projections[i] = projections[i].Inflated(r.Radius)
	}
	return axes, projections
}

// AppendAxesDerived appends, for each other point, the axis from the nearest
// inner vertex.
func (r Rounded) AppendAxesDerived(other []Vec2, dst []Vec2) []Vec2 {
	var buf [MaxPolygonVertices]Vec2
	vertices := r.Inner.AppendPoints(buf[:0])
	for _, p := range other {
		dst = appendAxisBetween(dst, nearestPoint(vertices, p), p)
	}
	return dst
}

func (r Rounded) WithOffset(delta Vec2) Shape {
	return Rounded{Inner: r.Inner.WithOffset(delta), Radius: r.Radius}
}

func (Rounded) CanSmearProjection() bool { return false }

func (r Rounded) Bounds() Rect {
	b := r.Inner.Bounds()
	b.HalfExtent = b.HalfExtent.Add(Vec2{r.Radius, r.Radius})
	return b
}

func (r Rounded) Raycast(rc *RayCaster) (RayHit, bool) {
	var buf [2 * MaxPolygonVertices]Vec2
	points, normals := r.loop(buf[:0:MaxPolygonVertices], buf[MaxPolygonVertices:MaxPolygonVertices:2*MaxPolygonVertices])
	return rc.roundedPolygon(points, normals, r.Radius)
}

func (r Rounded) Outline() DebugShape {
	points, normals := r.loop(nil, nil)
	return DebugShape{Kind: DebugRoundedPolygon, Points: points, Normals: normals, Radius: r.Radius}
}

func kindOf(s Shape) string {
	if s == nil {
		return "nil"
	}
	return s.Kind().String()
}
