package collision

import "math"

// Contact is the overlap of two projections on one axis. The shapes
// penetrate along the axis iff PenetrationMin and PenetrationMax differ in sign.
type Contact struct {
	Axis           Vec2    `json:"axis"`
	PenetrationMin float64 `json:"penetration_min"`
	PenetrationMax float64 `json:"penetration_max"`
}

// FromOverlap compares the projections of A and B on axis.
func FromOverlap(axis Vec2, a, b Projection) Contact {
	return Contact{Axis: axis, PenetrationMin: b.Min - a.Max, PenetrationMax: b.Max - a.Min}
}

func (c Contact) IsPenetration() bool {
	return math.Signbit(c.PenetrationMin) != math.Signbit(c.PenetrationMax)
}

// Depth is the penetration value with the smaller magnitude. Moving B by
// -Depth along Axis makes the projections touch.
func (c Contact) Depth() float64 {
	if math.Abs(c.PenetrationMin) < math.Abs(c.PenetrationMax) {
		return c.PenetrationMin
	}
	return c.PenetrationMax
}

// Reversed describes the same contact seen from B.
func (c Contact) Reversed() Contact {
	return Contact{Axis: c.Axis, PenetrationMin: -c.PenetrationMax, PenetrationMax: -c.PenetrationMin}
}

// Contacts is a list of per-axis results for one shape pair.
type Contacts []Contact

// Penetrating reports whether every contact penetrates.
func (cs Contacts) Penetrating() bool {
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if !c.IsPenetration() {
			return false
		}
	}
	return true
}

// Separating returns the first non-penetrating contact.
func (cs Contacts) Separating() (Contact, bool) {
	for _, c := range cs {
		if !c.IsPenetration() {
			return c, true
		}
	}
	return Contact{}, false
}

// MinPenetration returns the contact with the smallest absolute depth.
func (cs Contacts) MinPenetration() (Contact, bool) {
	best, found := Contact{}, false
	for _, c := range cs {
		if !found || math.Abs(c.Depth()) < math.Abs(best.Depth()) {
			best, found = c, true
		}
	}
	return best, found
}

// MTV is the minimum translation that moves B out of A.
func (cs Contacts) MTV() (Vec2, bool) {
	c, ok := cs.MinPenetration()
	if !ok || !cs.Penetrating() {
		return Vec2{}, false
	}
	return c.Axis.Mul(-c.Depth()), true
}

// MinAlongAxis returns the smallest distance B must travel along the unit
// direction to stop penetrating A, and the contact that limits it. Axes
// perpendicular to direction are ignored. The distance is exact for
// polygonal pairs; with curved shapes the axes belong to the current
// placement, so it is an upper bound. It reports false when the contacts do
// not describe a penetration or no axis can be resolved along direction.
func (cs Contacts) MinAlongAxis(direction Vec2) (Contact, float64, bool) {
	if !cs.Penetrating() {
		return Contact{}, 0, false
	}
	best, bestDistance, found := Contact{}, math.Inf(1), false
	for _, c := range cs {
		k := c.Axis.Dot(direction)
		var distance float64
		switch {
		case k > epsilon:
			distance = -c.PenetrationMin / k
		case k < -epsilon:
			distance = -c.PenetrationMax / k
		default:
			continue
		}
		if distance < bestDistance {
			best, bestDistance, found = c, distance, true
		}
	}
	if !found {
		return Contact{}, 0, false
	}
	return best, bestDistance, true
}
