package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/pkg/collision"
)

// Body is a static shape of the scene. Cached holds the same shape with its
// axes precomputed for the solver.
type Body struct {
	ID     string
	Shape  collision.RaycastTarget
	Cached collision.Cached
}

// Scene is a validated Config with every shape constructed.
type Scene struct {
	Name    string
	Bodies  []Body
	Queries []QueryConfig

	index map[string]int
}

// Build validates c and constructs its shapes. Bodies without an id get a
// random one, queries without a name are named after their position.
func (c *Config) Build(logger log.Log) (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Name:    c.Name,
		Bodies:  make([]Body, 0, len(c.Bodies)),
		Queries: make([]QueryConfig, len(c.Queries)),
		index:   make(map[string]int, len(c.Bodies)),
	}
	for i, b := range c.Bodies {
		shape, err := b.Shape.Build()
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, b.ID, err)
		}
		target, ok := shape.(collision.RaycastTarget)
		if !ok {
			return nil, fmt.Errorf("body %d (%s) %s: %w", i, b.ID, shape.Kind(), ErrNotRaycast)
		}

		id := b.ID
		if id == "" {
			id = uuid.NewString()
			logger.Warn("Body has no id, generated one",
				log.Int("index", i),
				log.String("id", id),
				log.String("kind", b.Shape.Kind),
			)
		}
		s.index[id] = len(s.Bodies)
		s.Bodies = append(s.Bodies, Body{ID: id, Shape: target, Cached: collision.NewCached(target)})
	}

	for i, q := range c.Queries {
		if q.Name == "" {
			q.Name = fmt.Sprintf("%s-%d", q.Type, i)
		}
		s.Queries[i] = q
	}
	return s, nil
}

// Body returns the body with the given id.
func (s *Scene) Body(id string) (Body, bool) {
	i, ok := s.index[id]
	if !ok {
		return Body{}, false
	}
	return s.Bodies[i], true
}

// Targets resolves ids to bodies. An empty list selects every body except
// the excluded one.
func (s *Scene) Targets(ids []string, exclude string) []Body {
	if len(ids) == 0 {
		out := make([]Body, 0, len(s.Bodies))
		for _, b := range s.Bodies {
			if b.ID != exclude {
				out = append(out, b)
			}
		}
		return out
	}
	out := make([]Body, 0, len(ids))
	for _, id := range ids {
		if b, ok := s.Body(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// Outlines returns the debug outline of every body, in body order.
func (s *Scene) Outlines() []collision.DebugShape {
	out := make([]collision.DebugShape, len(s.Bodies))
	for i, b := range s.Bodies {
		out[i] = b.Shape.Outline()
	}
	return out
}

// Bounds is the box enclosing every body.
func (s *Scene) Bounds() collision.Rect {
	var bounds collision.Rect
	for i, b := range s.Bodies {
		if i == 0 {
			bounds = b.Shape.Bounds()
			continue
		}
		bounds = bounds.Merged(b.Shape.Bounds())
	}
	return bounds
}

// Build constructs the collision shape described by s.
func (s *ShapeConfig) Build() (collision.Shape, error) {
	switch s.Kind {
	case "point":
		return collision.NewPoint(s.Origin)
	case "line":
		return collision.NewLine(s.Start, s.End)
	case "circle":
		return collision.NewCircle(s.Origin, s.Radius)
	case "rect":
		if s.Min != nil && s.Max != nil {
			return collision.NewRectMinMax(*s.Min, *s.Max)
		}
		return collision.NewRect(s.Origin, s.HalfExtent)
	case "oriented_rect":
		return collision.NewOrientedRect(s.Origin, s.HalfExtent, s.Direction)
	case "capsule":
		return collision.NewCapsule(s.Start, s.Height, s.Radius)
	case "slope":
		return collision.NewSlope(s.Origin, s.Run, s.Rise)
	case "ramp":
		return collision.NewRamp(s.Origin, s.Direction, s.Length)
	case "polygon":
		return collision.NewPolygon(s.Points...)
	case "rounded", "boxy":
		if s.Inner == nil {
			return nil, fmt.Errorf("%s inner: %w", s.Kind, ErrMissingField)
		}
		inner, err := s.Inner.Build()
		if err != nil {
			return nil, fmt.Errorf("%s inner: %w", s.Kind, err)
		}
		if s.Kind == "boxy" {
			return collision.NewBoxy(inner, s.HalfExtent)
		}
		return collision.NewRounded(inner, s.Radius)
	default:
		return nil, fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}
}
