package collision

import "math"

// Projection is the closed interval a shape covers on an axis.
type Projection struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewProjection orders its bounds so that Min <= Max.
func NewProjection(a, b float64) Projection {
	if a > b {
		a, b = b, a
	}
	return Projection{Min: a, Max: b}
}

func emptyProjection() Projection {
	return Projection{Min: math.Inf(1), Max: math.Inf(-1)}
}

func projectPoints(axis Vec2, points []Vec2) Projection {
	p := emptyProjection()
	for _, v := range points {
		p = p.Expanded(axis.Dot(v))
	}
	return p
}

// Merged returns the smallest interval covering both p and o.
func (p Projection) Merged(o Projection) Projection {
	return Projection{Min: math.Min(p.Min, o.Min), Max: math.Max(p.Max, o.Max)}
}

// Expanded grows p to include v.
func (p Projection) Expanded(v float64) Projection {
	return Projection{Min: math.Min(p.Min, v), Max: math.Max(p.Max, v)}
}

// Inflated pads both ends by r.
func (p Projection) Inflated(r float64) Projection {
	return Projection{Min: p.Min - r, Max: p.Max + r}
}

// Smeared extends p on one side by the signed distance d.
func (p Projection) Smeared(d float64) Projection {
	if d >= 0 {
		return Projection{Min: p.Min, Max: p.Max + d}
	}
	return Projection{Min: p.Min + d, Max: p.Max}
}

func (p Projection) Offset(d float64) Projection {
	return Projection{Min: p.Min + d, Max: p.Max + d}
}

// Reversed is the projection on the negated axis.
func (p Projection) Reversed() Projection {
	return Projection{Min: -p.Max, Max: -p.Min}
}

func (p Projection) Length() float64 {
	return p.Max - p.Min
}

func (p Projection) Contains(v float64) bool {
	return v >= p.Min && v <= p.Max
}

// Overlaps reports whether the intervals intersect; touching counts.
func (p Projection) Overlaps(o Projection) bool {
	return p.Min <= o.Max && o.Min <= p.Max
}
