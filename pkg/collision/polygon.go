package collision

import "fmt"

// MaxPolygonVertices bounds the vertex count of a Polygon.
const MaxPolygonVertices = 12

// Polygon is a small convex polygon stored counter-clockwise in fixed
// capacity arrays, together with the outward normal of each edge.
type Polygon struct {
	points  [MaxPolygonVertices]Vec2
	normals [MaxPolygonVertices]Vec2
	count   int
}

// NewPolygon validates the outline and reverses clockwise input.
func NewPolygon(points ...Vec2) (Polygon, error) {
	n := len(points)
	if n < 3 || n > MaxPolygonVertices {
		return Polygon{}, fmt.Errorf("%d vertices: %w", n, ErrInvalidPolygon)
	}

	var p Polygon
	p.count = n
	copy(p.points[:], points)

	var area float64
	for i := 0; i < n; i++ {
		a, b := p.points[i], p.points[(i+1)%n]
		if !isFiniteVec(a) {
			return Polygon{}, ErrInvalidPosition
		}
		if _, ok := axisBetween(a, b); !ok {
			return Polygon{}, fmt.Errorf("repeated vertex %d: %w", i, ErrInvalidPolygon)
		}
		area += perpDot(a, b)
	}
	if area > -epsilon && area < epsilon {
		return Polygon{}, fmt.Errorf("zero area: %w", ErrInvalidPolygon)
	}
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			p.points[i], p.points[j] = p.points[j], p.points[i]
		}
	}

	for i := 0; i < n; i++ {
		a, b, c := p.points[i], p.points[(i+1)%n], p.points[(i+2)%n]
		if perpDot(b.Sub(a), c.Sub(b)) < -epsilon {
			return Polygon{}, fmt.Errorf("reflex vertex %d: %w", (i+1)%n, ErrInvalidPolygon)
		}
		p.normals[i] = edgeNormal(a, b)
	}
	return p, nil
}

func (Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Len() int { return p.count }

// Points returns a copy of the vertices in counter-clockwise order.
func (p Polygon) Points() []Vec2 {
	return append([]Vec2(nil), p.points[:p.count]...)
}

// Normals returns a copy of the outward edge normals; Normals()[i] belongs to
// the edge leaving vertex i.
func (p Polygon) Normals() []Vec2 {
	return append([]Vec2(nil), p.normals[:p.count]...)
}

func (p Polygon) ProjectOnAxis(axis Vec2) Projection {
	return projectPoints(axis, p.points[:p.count])
}

func (p Polygon) AppendPoints(dst []Vec2) []Vec2 {
	return append(dst, p.points[:p.count]...)
}

func (p Polygon) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	for _, n := range p.normals[:p.count] {
		axes = append(axes, n)
		projections = append(projections, p.ProjectOnAxis(n))
	}
	return axes, projections
}

func (Polygon) AppendAxesDerived(_ []Vec2, dst []Vec2) []Vec2 {
	return dst
}

func (p Polygon) WithOffset(delta Vec2) Shape {
	for i := range p.points[:p.count] {
		p.points[i] = p.points[i].Add(delta)
	}
	return p
}

func (Polygon) CanSmearProjection() bool { return true }

func (p Polygon) Bounds() Rect {
	return boundsOfPoints(p.points[:p.count])
}

func (p Polygon) appendLoop(points, normals []Vec2) ([]Vec2, []Vec2) {
	return append(points, p.points[:p.count]...), append(normals, p.normals[:p.count]...)
}

func (p Polygon) Raycast(r *RayCaster) (RayHit, bool) {
	return r.polygon(p.points[:p.count], p.normals[:p.count])
}

func (p Polygon) Outline() DebugShape {
	points, normals := p.appendLoop(nil, nil)
	return DebugShape{Kind: DebugPolygon, Points: points, Normals: normals}
}
