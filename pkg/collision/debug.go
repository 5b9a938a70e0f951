package collision

import "iter"

// DebugKind selects which fields of a DebugShape are meaningful.
type DebugKind string

const (
	DebugCircle         DebugKind = "circle"
	DebugPolygon        DebugKind = "polygon"
	DebugRoundedPolygon DebugKind = "rounded_polygon"
)

// DebugShape is the read-only boundary description handed to renderers:
// circles carry Origin and Radius, polygons an ordered vertex loop with one
// outward normal per edge, rounded polygons additionally a corner Radius.
type DebugShape struct {
	Kind    DebugKind `json:"kind"`
	Origin  Vec2      `json:"origin,omitempty"`
	Radius  float64   `json:"radius,omitempty"`
	Points  []Vec2    `json:"points,omitempty"`
	Normals []Vec2    `json:"normals,omitempty"`
}

// Segment is one drawable edge of an outline.
type Segment struct {
	Start  Vec2 `json:"start"`
	End    Vec2 `json:"end"`
	Normal Vec2 `json:"normal"`
}

// Segments yields the straight edges of a polygon outline; rounded outlines
// are pushed out along each normal by the radius. Circles have no segments.
func (d DebugShape) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if d.Kind == DebugCircle {
			return
		}
		for i := range d.Points {
			offset := d.Normals[i].Mul(d.Radius)
			seg := Segment{
				Start:  d.Points[i].Add(offset),
				End:    d.Points[(i+1)%len(d.Points)].Add(offset),
				Normal: d.Normals[i],
			}
			if !yield(seg) {
				return
			}
		}
	}
}
