package collision

// Kind tags every member of the shape catalog.
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindRect
	KindOrientedRect
	KindCapsule
	KindSlope
	KindPolygon
	KindRounded
	KindSweep
	KindCached
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindOrientedRect:
		return "oriented_rect"
	case KindCapsule:
		return "capsule"
	case KindSlope:
		return "slope"
	case KindPolygon:
		return "polygon"
	case KindRounded:
		return "rounded"
	case KindSweep:
		return "sweep"
	case KindCached:
		return "cached"
	default:
		return "unknown"
	}
}

// Shape is the capability contract shared by the whole catalog. The set of
// implementations is closed: Point, Line, Circle, Rect, OrientedRect,
// Capsule, Slope, Polygon, Rounded, Sweep and the Cached wrapper.
type Shape interface {
	Kind() Kind

	// ProjectOnAxis projects the shape onto a unit axis.
	ProjectOnAxis(axis Vec2) Projection

	// AppendPoints appends the representative vertices of the shape.
	AppendPoints(dst []Vec2) []Vec2

	// AppendAxes appends the shape's own face axes together with the
	// projection of the shape onto each of them.
	AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection)

	// AppendAxesDerived appends axes running from the shape's nearest
	// feature to each of the other shape's points.
	AppendAxesDerived(other []Vec2, dst []Vec2) []Vec2

	WithOffset(delta Vec2) Shape

	// CanSmearProjection reports whether the projection of the shape swept
	// along a motion equals its static projection extended one-sided.
	CanSmearProjection() bool

	Bounds() Rect
}

// RaycastTarget is implemented by every static catalog shape.
type RaycastTarget interface {
	Shape
	Raycast(r *RayCaster) (RayHit, bool)
	Outline() DebugShape
}

// polygonal shapes expose a counter-clockwise vertex loop with the outward
// normal of the edge leaving each vertex.
type polygonal interface {
	Shape
	appendLoop(points, normals []Vec2) ([]Vec2, []Vec2)
}

var (
	_ RaycastTarget = Point{}
	_ RaycastTarget = Line{}
	_ RaycastTarget = Circle{}
	_ RaycastTarget = Rect{}
	_ RaycastTarget = OrientedRect{}
	_ RaycastTarget = Capsule{}
	_ RaycastTarget = Slope{}
	_ RaycastTarget = Polygon{}
	_ RaycastTarget = Rounded{}
	_ Shape         = Sweep{}
	_ Shape         = Cached{}

	_ polygonal = Line{}
	_ polygonal = Rect{}
	_ polygonal = OrientedRect{}
	_ polygonal = Slope{}
	_ polygonal = Polygon{}
)

// edgeNormal is the outward normal of the edge a->b on a counter-clockwise loop.
func edgeNormal(a, b Vec2) Vec2 {
	return mustNormalize(perp(b.Sub(a))).Mul(-1)
}

func boundsOfPoints(points []Vec2) Rect {
	x, y := projectPoints(axisX, points), projectPoints(axisY, points)
	return rectFromMinMax(Vec2{x.Min, y.Min}, Vec2{x.Max, y.Max})
}
