package collision

import (
	"fmt"
	"math"
)

// RayIntersection is one crossing of a ray with a shape boundary.
type RayIntersection struct {
	Distance float64 `json:"distance"`
	Point    Vec2    `json:"point"`
	Normal   Vec2    `json:"normal"`
}

// RayHit holds where the ray enters and leaves a shape; Entry.Distance <= Exit.Distance.
// Distances are measured along the full line, so Entry is negative when the
// origin is inside the shape.
type RayHit struct {
	Entry RayIntersection `json:"entry"`
	Exit  RayIntersection `json:"exit"`
}

// RayCaster tests one ray against many shapes.
type RayCaster struct {
	origin       Vec2
	direction    Vec2
	directionInv Vec2
	originAlong  float64
	originAcross float64
}

// NewRayCaster panics when direction is not unit length.
func NewRayCaster(origin, direction Vec2) *RayCaster {
	if !isUnit(direction) {
		panic(fmt.Errorf("direction %v: %w", direction, ErrUnnormalizedDirection))
	}
	return &RayCaster{
		origin:       origin,
		direction:    direction,
		directionInv: Vec2{1 / direction[0], 1 / direction[1]},
		originAlong:  direction.Dot(origin),
		originAcross: perpDot(direction, origin),
	}
}

// Raycast intersects a ray with target and drops hits lying entirely behind origin.
func Raycast(origin, direction Vec2, target RaycastTarget) (RayHit, bool) {
	hit, ok := target.Raycast(NewRayCaster(origin, direction))
	if !ok || hit.Exit.Distance < 0 {
		return RayHit{}, false
	}
	return hit, true
}

func (r *RayCaster) Origin() Vec2    { return r.origin }
func (r *RayCaster) Direction() Vec2 { return r.direction }

func (r *RayCaster) PointAt(distance float64) Vec2 {
	return r.origin.Add(r.direction.Mul(distance))
}

// local returns the distance along the ray to the foot of p and the signed
// offset of p across the ray.
func (r *RayCaster) local(p Vec2) (along, across float64) {
	return r.direction.Dot(p) - r.originAlong, perpDot(r.direction, p) - r.originAcross
}

func (r *RayCaster) intersection(distance float64, normal Vec2) RayIntersection {
	return RayIntersection{Distance: distance, Point: r.PointAt(distance), Normal: normal}
}

func (r *RayCaster) circle(center Vec2, radius float64) (RayHit, bool) {
	along, across := r.local(center)
	if math.Abs(across) > radius {
		return RayHit{}, false
	}
	offset := math.Sqrt(radius*radius - across*across)
	near, far := along-offset, along+offset
	nearPoint, farPoint := r.PointAt(near), r.PointAt(far)
	return RayHit{
		Entry: RayIntersection{Distance: near, Point: nearPoint, Normal: circleNormal(nearPoint, center, radius, r.direction.Mul(-1))},
		Exit:  RayIntersection{Distance: far, Point: farPoint, Normal: circleNormal(farPoint, center, radius, r.direction)},
	}, true
}

// rect is the slab test against an axis-aligned box.
func (r *RayCaster) rect(min, max Vec2) (RayHit, bool) {
	entry, exit := math.Inf(-1), math.Inf(1)
	var entryNormal, exitNormal Vec2
	for i := 0; i < 2; i++ {
		if math.Abs(r.direction[i]) <= epsilon {
			if r.origin[i] < min[i] || r.origin[i] > max[i] {
				return RayHit{}, false
			}
			continue
		}
		t0 := (min[i] - r.origin[i]) * r.directionInv[i]
		t1 := (max[i] - r.origin[i]) * r.directionInv[i]
		var n0, n1 Vec2
		n0[i], n1[i] = -1, 1
		if t0 > t1 {
			t0, t1 = t1, t0
			n0, n1 = n1, n0
		}
		if t0 > entry {
			entry, entryNormal = t0, n0
		}
		if t1 < exit {
			exit, exitNormal = t1, n1
		}
		if entry > exit {
			return RayHit{}, false
		}
	}
	return RayHit{Entry: r.intersection(entry, entryNormal), Exit: r.intersection(exit, exitNormal)}, true
}

// segment intersects the ray's line with the segment a-b carrying normal.
func (r *RayCaster) segment(a, b, normal Vec2) (RayIntersection, bool) {
	edge := b.Sub(a)
	denom := perpDot(r.direction, edge)
	if math.Abs(denom) <= epsilon {
		return RayIntersection{}, false
	}
	w := r.origin.Sub(a)
	s := perpDot(r.direction, w) / denom
	if s < 0 || s > 1 {
		return RayIntersection{}, false
	}
	t := perpDot(edge, w) / denom
	return r.intersection(t, normal), true
}

// alongSegment handles a ray lying on the line through a and b. The hit spans
// the segment: it enters at the nearer endpoint facing the ray and leaves at
// the farther one.
func (r *RayCaster) alongSegment(a, b Vec2) (RayHit, bool) {
	if math.Abs(perpDot(r.direction, b.Sub(a))) > epsilon {
		return RayHit{}, false
	}
	ta, across := r.local(a)
	if math.Abs(across) > epsilon {
		return RayHit{}, false
	}
	tb, _ := r.local(b)
	return RayHit{
		Entry: r.intersection(math.Min(ta, tb), r.direction.Mul(-1)),
		Exit:  r.intersection(math.Max(ta, tb), r.direction),
	}, true
}

// polygon merges every edge crossing into the nearest entry and farthest exit.
func (r *RayCaster) polygon(points, normals []Vec2) (RayHit, bool) {
	var hit RayHit
	found := false
	for i := range points {
		cross, ok := r.segment(points[i], points[(i+1)%len(points)], normals[i])
		if !ok {
			continue
		}
		if !found || cross.Distance < hit.Entry.Distance {
			hit.Entry = cross
		}
		if !found || cross.Distance > hit.Exit.Distance {
			hit.Exit = cross
		}
		found = true
	}
	return hit, found
}

// roundedPolygon tests the outline offset by radius plus a circle at every
// corner. Entry candidates must face against the ray and exit candidates with it.
func (r *RayCaster) roundedPolygon(points, normals []Vec2, radius float64) (RayHit, bool) {
	entry := RayIntersection{Distance: math.Inf(1)}
	exit := RayIntersection{Distance: math.Inf(-1)}
	accept := func(cross RayIntersection) {
		facing := cross.Normal.Dot(r.direction)
		if facing < 0 && cross.Distance < entry.Distance {
			entry = cross
		}
		if facing > 0 && cross.Distance > exit.Distance {
			exit = cross
		}
	}

	for i := range points {
		offset := normals[i].Mul(radius)
		a, b := points[i].Add(offset), points[(i+1)%len(points)].Add(offset)
		if cross, ok := r.segment(a, b, normals[i]); ok {
			accept(cross)
		}
		if hit, ok := r.circle(points[i], radius); ok {
			accept(hit.Entry)
			accept(hit.Exit)
		}
	}

	if math.IsInf(entry.Distance, 0) || math.IsInf(exit.Distance, 0) {
		return RayHit{}, false
	}
	return RayHit{Entry: entry, Exit: exit}, true
}
