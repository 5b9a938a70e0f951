package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/collide/pkg/collision"
)

// Config describes a set of static bodies and the queries to run against them.
// It can be written in JSON or YAML.
type Config struct {
	Name    string        `json:"name" yaml:"name"`
	Bodies  []BodyConfig  `json:"bodies" yaml:"bodies"`
	Queries []QueryConfig `json:"queries,omitempty" yaml:"queries,omitempty"`
}

type BodyConfig struct {
	ID    string      `json:"id,omitempty" yaml:"id,omitempty"`
	Shape ShapeConfig `json:"shape" yaml:"shape"`
}

// ShapeConfig holds the parameters of every shape kind. Which fields are read
// depends on Kind.
type ShapeConfig struct {
	Kind       string           `json:"kind" yaml:"kind"`
	Origin     collision.Vec2   `json:"origin,omitempty" yaml:"origin,omitempty"`
	Start      collision.Vec2   `json:"start,omitempty" yaml:"start,omitempty"`
	End        collision.Vec2   `json:"end,omitempty" yaml:"end,omitempty"`
	HalfExtent collision.Vec2   `json:"half_extent,omitempty" yaml:"half_extent,omitempty"`
	Min        *collision.Vec2  `json:"min,omitempty" yaml:"min,omitempty"`
	Max        *collision.Vec2  `json:"max,omitempty" yaml:"max,omitempty"`
	Direction  collision.Vec2   `json:"direction,omitempty" yaml:"direction,omitempty"`
	Radius     float64          `json:"radius,omitempty" yaml:"radius,omitempty"`
	Height     float64          `json:"height,omitempty" yaml:"height,omitempty"`
	Run        float64          `json:"run,omitempty" yaml:"run,omitempty"`
	Rise       float64          `json:"rise,omitempty" yaml:"rise,omitempty"`
	Length     float64          `json:"length,omitempty" yaml:"length,omitempty"`
	Points     []collision.Vec2 `json:"points,omitempty" yaml:"points,omitempty"`
	Inner      *ShapeConfig     `json:"inner,omitempty" yaml:"inner,omitempty"`
}

const (
	QueryOverlap = "overlap"
	QuerySweep   = "sweep"
	QueryRaycast = "raycast"
)

// QueryConfig is one query. Overlap uses A, B and Mode; a non-zero Along asks
// for the push out of A along that direction as well. Sweep moves Body by
// Motion. Raycast casts from Origin along Direction. An empty Targets list
// means every other body.
type QueryConfig struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Type      string         `json:"type" yaml:"type"`
	A         string         `json:"a,omitempty" yaml:"a,omitempty"`
	B         string         `json:"b,omitempty" yaml:"b,omitempty"`
	Mode      string         `json:"mode,omitempty" yaml:"mode,omitempty"`
	Along     collision.Vec2 `json:"along,omitempty" yaml:"along,omitempty"`
	Body      string         `json:"body,omitempty" yaml:"body,omitempty"`
	Motion    collision.Vec2 `json:"motion,omitempty" yaml:"motion,omitempty"`
	Origin    collision.Vec2 `json:"origin,omitempty" yaml:"origin,omitempty"`
	Direction collision.Vec2 `json:"direction,omitempty" yaml:"direction,omitempty"`
	Targets   []string       `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode json scene: %w", err)
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode yaml scene: %w", err)
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("scene %s: %w", path, ErrUnknownFormat)
	}
}

// Validate checks kinds, references and query parameters. Numeric ranges are
// checked when shapes are built.
func (c *Config) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("scene %q: %w", c.Name, ErrNoBodies)
	}

	ids := make(map[string]struct{}, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.ID != "" {
			if _, dup := ids[b.ID]; dup {
				return fmt.Errorf("body %q: %w", b.ID, ErrDuplicateID)
			}
			ids[b.ID] = struct{}{}
		}
		if err := b.Shape.Validate(); err != nil {
			return fmt.Errorf("body %d (%s): %w", i, b.ID, err)
		}
	}

	names := make(map[string]struct{}, len(c.Queries))
	for i, q := range c.Queries {
		if q.Name != "" {
			if _, dup := names[q.Name]; dup {
				return fmt.Errorf("query %q: %w", q.Name, ErrDuplicateID)
			}
			names[q.Name] = struct{}{}
		}
		if err := q.validate(ids); err != nil {
			return fmt.Errorf("query %d (%s): %w", i, q.Name, err)
		}
	}
	return nil
}

func (s *ShapeConfig) Validate() error {
	switch s.Kind {
	case "point", "line", "circle", "oriented_rect", "capsule", "slope", "ramp", "polygon":
		return nil
	case "rect":
		if (s.Min == nil) != (s.Max == nil) {
			return fmt.Errorf("rect needs both min and max: %w", ErrMissingField)
		}
		return nil
	case "rounded", "boxy":
		if s.Inner == nil {
			return fmt.Errorf("%s inner: %w", s.Kind, ErrMissingField)
		}
		if err := s.Inner.Validate(); err != nil {
			return fmt.Errorf("%s inner: %w", s.Kind, err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}
}

func (q *QueryConfig) validate(ids map[string]struct{}) error {
	ref := func(field, id string) error {
		if id == "" {
			return fmt.Errorf("%s: %w", field, ErrMissingField)
		}
		if _, ok := ids[id]; !ok {
			return fmt.Errorf("%s %q: %w", field, id, ErrUnknownBody)
		}
		return nil
	}

	for _, t := range q.Targets {
		if err := ref("target", t); err != nil {
			return err
		}
	}

	switch q.Type {
	case QueryOverlap:
		if _, err := ParseMode(q.Mode); err != nil {
			return err
		}
		if err := ref("a", q.A); err != nil {
			return err
		}
		return ref("b", q.B)
	case QuerySweep:
		return ref("body", q.Body)
	case QueryRaycast:
		if q.Direction == (collision.Vec2{}) {
			return fmt.Errorf("raycast direction: %w", collision.ErrZeroDirection)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", q.Type, ErrUnknownQuery)
	}
}

// ParseMode parses a solver mode name. The empty string selects ModeAll.
func ParseMode(s string) (collision.Mode, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return collision.ModeAll, nil
	case "require_overlap":
		return collision.ModeRequireOverlap, nil
	case "require_separate":
		return collision.ModeRequireSeparate, nil
	case "require_overlap_strict":
		return collision.ModeRequireOverlapStrict, nil
	default:
		return 0, fmt.Errorf("mode %q: %w", s, ErrUnknownMode)
	}
}
