package collision

import "github.com/zeusync/collide/pkg/generic"

// Mode controls when the solver stops testing axes.
type Mode uint8

const (
	// ModeAll tests every axis and reports whether all of them penetrate.
	ModeAll Mode = iota
	// ModeRequireOverlap stops with false at the first separating axis.
	ModeRequireOverlap
	// ModeRequireSeparate stops with false at the first penetrating axis.
	ModeRequireSeparate
	// ModeRequireOverlapStrict behaves like ModeRequireOverlap but leaves dst
	// untouched when it fails.
	ModeRequireOverlapStrict
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeRequireOverlap:
		return "require_overlap"
	case ModeRequireSeparate:
		return "require_separate"
	case ModeRequireOverlapStrict:
		return "require_overlap_strict"
	default:
		return "unknown"
	}
}

// ScratchCapacity covers the worst-case axis count of one shape pair.
const ScratchCapacity = 4 * MaxPolygonVertices

var worldAxes = [2]Vec2{axisX, axisY}

// Solver runs separating axis tests. It owns scratch buffers that are reused
// between calls, so a Solver must not be shared between goroutines.
type Solver struct {
	axes        []Vec2
	projections []Projection
	points      []Vec2
}

func NewSolver() *Solver {
	return &Solver{
		axes:        make([]Vec2, 0, ScratchCapacity),
		projections: make([]Projection, 0, ScratchCapacity),
		points:      make([]Vec2, 0, ScratchCapacity),
	}
}

func (s *Solver) reset() {
	s.axes = s.axes[:0]
	s.projections = s.projections[:0]
	s.points = s.points[:0]
}

// Test appends one contact per tested axis to dst. Axes are tested in this
// order: world X and Y, A's face axes, B's face axes (negated), then the
// candidate axes of the pair or, for kinds without a candidate table, the
// axes derived from B's points against A followed by A's points against B.
func (s *Solver) Test(a, b Shape, mode Mode, dst []Contact) ([]Contact, bool) {
	s.reset()
	run := solverRun{mode: mode, base: len(dst), dst: dst, overlap: true}

	for _, axis := range worldAxes {
		if run.add(FromOverlap(axis, a.ProjectOnAxis(axis), b.ProjectOnAxis(axis))) {
			return run.finish()
		}
	}

	s.axes, s.projections = a.AppendAxes(s.axes, s.projections)
	for i, axis := range s.axes {
		if run.add(FromOverlap(axis, s.projections[i], b.ProjectOnAxis(axis))) {
			return run.finish()
		}
	}

	s.axes, s.projections = b.AppendAxes(s.axes[:0], s.projections[:0])
	for i, axis := range s.axes {
		reversed := axis.Mul(-1)
		if run.add(FromOverlap(reversed, a.ProjectOnAxis(reversed), s.projections[i].Reversed())) {
			return run.finish()
		}
	}

	var ok bool
	if s.axes, ok = AppendCandidateAxes(a, b, s.axes[:0]); !ok {
		s.points = b.AppendPoints(s.points[:0])
		s.axes = a.AppendAxesDerived(s.points, s.axes)
		s.points = a.AppendPoints(s.points[:0])
		s.axes = b.AppendAxesDerived(s.points, s.axes)
	}
	for _, axis := range s.axes {
		if run.add(FromOverlap(axis, a.ProjectOnAxis(axis), b.ProjectOnAxis(axis))) {
			return run.finish()
		}
	}

	return run.finish()
}

type solverRun struct {
	mode    Mode
	base    int
	dst     []Contact
	overlap bool
	aborted bool
}

// add records c and reports whether testing must stop.
func (r *solverRun) add(c Contact) bool {
	r.dst = append(r.dst, c)
	penetrating := c.IsPenetration()
	r.overlap = r.overlap && penetrating

	switch r.mode {
	case ModeRequireOverlap, ModeRequireOverlapStrict:
		r.aborted = !penetrating
	case ModeRequireSeparate:
		r.aborted = penetrating
	}
	return r.aborted
}

func (r *solverRun) finish() ([]Contact, bool) {
	switch {
	case r.mode == ModeAll:
		return r.dst, r.overlap
	case r.aborted && r.mode == ModeRequireOverlapStrict:
		return r.dst[:r.base], false
	default:
		return r.dst, !r.aborted
	}
}

var solverPool = generic.NewPool(NewSolver, (*Solver).reset)

// TestOverlap is Solver.Test without caller-owned buffers. It is safe for
// concurrent use and returns a freshly allocated contact list.
func TestOverlap(a, b Shape, mode Mode) (Contacts, bool) {
	s := solverPool.Get()
	defer solverPool.Put(s)
	return s.Test(a, b, mode, nil)
}
