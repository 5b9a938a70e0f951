package collision

// MaxCachedAxes covers the own axes of every catalog shape, including a
// Sweep of a 12-gon.
const MaxCachedAxes = MaxPolygonVertices + 1

// Cached wraps a shape whose own axes and projections are computed once.
// Offsetting a Cached shifts the stored projections instead of projecting
// again, so static geometry tested against many movers pays for its axes a
// single time.
type Cached struct {
	shape       Shape
	axes        [MaxCachedAxes]Vec2
	projections [MaxCachedAxes]Projection
	count       int
}

// NewCached caches the axes of shape. Wrapping a Cached returns it unchanged.
func NewCached(shape Shape) Cached {
	if c, ok := shape.(Cached); ok {
		return c
	}
	c := Cached{shape: shape}
	axes, projections := shape.AppendAxes(c.axes[:0], c.projections[:0])
	if len(axes) > MaxCachedAxes {
		panic("collision: cached shape has more than MaxCachedAxes axes")
	}
	c.count = copy(c.axes[:], axes)
	copy(c.projections[:], projections)
	return c
}

// Shape returns the wrapped shape.
func (c Cached) Shape() Shape { return c.shape }

func (Cached) Kind() Kind { return KindCached }

func (c Cached) ProjectOnAxis(axis Vec2) Projection {
	return c.shape.ProjectOnAxis(axis)
}

func (c Cached) AppendPoints(dst []Vec2) []Vec2 {
	return c.shape.AppendPoints(dst)
}

func (c Cached) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	return append(axes, c.axes[:c.count]...), append(projections, c.projections[:c.count]...)
}

func (c Cached) AppendAxesDerived(other []Vec2, dst []Vec2) []Vec2 {
	return c.shape.AppendAxesDerived(other, dst)
}

func (c Cached) WithOffset(delta Vec2) Shape {
	c.shape = c.shape.WithOffset(delta)
	for i := range c.count {
		c.projections[i] = c.projections[i].Offset(c.axes[i].Dot(delta))
	}
	return c
}

func (c Cached) CanSmearProjection() bool { return c.shape.CanSmearProjection() }

func (c Cached) Bounds() Rect { return c.shape.Bounds() }

// uncached strips a Cached wrapper so type switches see the catalog shape.
func uncached(s Shape) Shape {
	if c, ok := s.(Cached); ok {
		return c.shape
	}
	return s
}
