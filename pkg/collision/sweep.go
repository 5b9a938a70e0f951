package collision

import (
	"fmt"
	"math"
)

// Sweep is a shape moving along Motion; End is Start offset by Motion.
type Sweep struct {
	Start  Shape `json:"start"`
	End    Shape `json:"end"`
	Motion Vec2  `json:"motion"`
}

// NewSweep rejects zero or non-finite motion.
func NewSweep(shape Shape, motion Vec2) (Sweep, error) {
	if !isFiniteVec(motion) || motion.Len() <= epsilon {
		return Sweep{}, fmt.Errorf("motion %v: %w", motion, ErrZeroMotion)
	}
	return Sweep{Start: shape, End: shape.WithOffset(motion), Motion: motion}, nil
}

func (Sweep) Kind() Kind { return KindSweep }

// TestAxis is the axis perpendicular to the motion.
func (s Sweep) TestAxis() Vec2 {
	return perp(mustNormalize(s.Motion))
}

func (s Sweep) ProjectOnAxis(axis Vec2) Projection {
	return s.extend(axis, s.Start.ProjectOnAxis(axis))
}

// extend turns the start projection on axis into the projection of the sweep.
func (s Sweep) extend(axis Vec2, start Projection) Projection {
	if s.Start.CanSmearProjection() {
		return start.Smeared(axis.Dot(s.Motion))
	}
	return start.Merged(s.End.ProjectOnAxis(axis))
}

func (s Sweep) AppendPoints(dst []Vec2) []Vec2 {
	dst = s.Start.AppendPoints(dst)
	return s.End.AppendPoints(dst)
}

func (s Sweep) AppendAxes(axes []Vec2, projections []Projection) ([]Vec2, []Projection) {
	start := len(axes)
	axes, projections = s.Start.AppendAxes(axes, projections)
	for i := start; i < len(axes); i++ {
		projections[i] = s.extend(axes[i], projections[i])
	}
	test := s.TestAxis()
	return append(axes, test), append(projections, s.ProjectOnAxis(test))
}

func (s Sweep) AppendAxesDerived(other []Vec2, dst []Vec2) []Vec2 {
	dst = s.Start.AppendAxesDerived(other, dst)
	if s.Start.CanSmearProjection() {
		return dst
	}
	return s.End.AppendAxesDerived(other, dst)
}

func (s Sweep) WithOffset(delta Vec2) Shape {
	return Sweep{Start: s.Start.WithOffset(delta), End: s.End.WithOffset(delta), Motion: s.Motion}
}

func (Sweep) CanSmearProjection() bool { return false }

func (s Sweep) Bounds() Rect {
	return s.Start.Bounds().Merged(s.End.Bounds())
}

// SweepHit is the first contact of a moving shape along its motion.
type SweepHit struct {
	// Fraction of the motion travelled before touching, in [0, 1].
	Fraction float64 `json:"fraction"`
	// Normal of the obstacle surface at the contact, facing the mover.
	Normal Vec2 `json:"normal"`
	// Index of the obstacle in the candidate list.
	Index int `json:"index"`
}

// TestSweep finds the earliest obstacle hit by moving as it travels along
// motion. Zero motion never hits. Pairs Combine supports are answered with a
// single ray cast; the rest go through the separating axis solver. Statics
// swept against repeatedly can be wrapped with NewCached.
func TestSweep(moving Shape, motion Vec2, statics []Shape) (SweepHit, bool) {
	length := motion.Len()
	if length <= epsilon || !isFinite(length) {
		return SweepHit{}, false
	}
	direction := motion.Mul(1 / length)

	var caster *RayCaster
	if center, ok := Center(moving); ok {
		caster = NewRayCaster(center, direction)
	}

	best, found := SweepHit{}, false
	for i, static := range statics {
		hit, ok := sweepOne(caster, moving, motion, static)
		if !ok {
			continue
		}
		if !found || hit.Fraction < best.Fraction {
			hit.Index = i
			best, found = hit, true
		}
	}
	return best, found
}

func sweepOne(caster *RayCaster, moving Shape, motion Vec2, static Shape) (SweepHit, bool) {
	if caster != nil {
		if combined, err := Combine(moving, static); err == nil {
			if target, ok := combined.(RaycastTarget); ok {
				return sweepRay(caster, target, motion.Len())
			}
		}
	}
	return sweepSolver(moving, motion, static)
}

func sweepRay(caster *RayCaster, target RaycastTarget, length float64) (SweepHit, bool) {
	hit, ok := target.Raycast(caster)
	if !ok || hit.Exit.Distance < 0 || hit.Entry.Distance > length {
		return SweepHit{}, false
	}
	return SweepHit{
		Fraction: math.Max(hit.Entry.Distance, 0) / length,
		Normal:   hit.Entry.Normal,
	}, true
}

// sweepSolver confirms the swept overlap with the solver, then takes the
// latest entry time over the tested axes as the time of impact.
func sweepSolver(moving Shape, motion Vec2, static Shape) (SweepHit, bool) {
	sweep, err := NewSweep(moving, motion)
	if err != nil {
		return SweepHit{}, false
	}

	s := solverPool.Get()
	defer solverPool.Put(s)
	contacts, overlap := s.Test(sweep, static, ModeRequireOverlap, nil)
	if !overlap {
		return SweepHit{}, false
	}

	enter, exit := math.Inf(-1), math.Inf(1)
	normal := mustNormalize(motion).Mul(-1)
	for _, c := range contacts {
		axis := c.Axis
		a, b := moving.ProjectOnAxis(axis), static.ProjectOnAxis(axis)
		v := axis.Dot(motion)
		if math.Abs(v) <= epsilon {
			if !FromOverlap(axis, a, b).IsPenetration() {
				return SweepHit{}, false
			}
			continue
		}
		t0, t1 := (b.Min-a.Max)/v, (b.Max-a.Min)/v
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > enter {
			enter = t0
			normal = axis.Mul(-sign(v))
		}
		exit = math.Min(exit, t1)
	}
	if enter > exit || enter > 1 || exit < 0 {
		return SweepHit{}, false
	}
	return SweepHit{Fraction: math.Max(enter, 0), Normal: normal}, true
}
