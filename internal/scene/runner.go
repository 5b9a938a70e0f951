package scene

import (
	"context"
	"time"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/pkg/collision"
	"github.com/zeusync/collide/pkg/concurrent"
)

// Result is the outcome of one query. Target names the body that was hit by
// a sweep or raycast.
type Result struct {
	Query    string              `json:"query"`
	Type     string              `json:"type"`
	Hit      bool                `json:"hit"`
	Contacts collision.Contacts  `json:"contacts,omitempty"`
	MTV      *collision.Vec2     `json:"mtv,omitempty"`
	Along    *collision.Vec2     `json:"along,omitempty"`
	Target   string              `json:"target,omitempty"`
	Sweep    *collision.SweepHit `json:"sweep,omitempty"`
	Ray      *collision.RayHit   `json:"ray,omitempty"`
}

type Runner struct {
	log     log.Log
	workers int
}

func NewRunner(logger log.Log, workers int) *Runner {
	return &Runner{
		log:     logger.With(log.String("component", "scene_runner")),
		workers: max(workers, 1),
	}
}

// Run executes every query of s. Overlap queries are batched onto workers;
// sweeps and raycasts run one per goroutine. Results keep query order.
func (r *Runner) Run(ctx context.Context, s *Scene) ([]Result, error) {
	started := time.Now()
	results := make([]Result, len(s.Queries))

	var (
		pairs    []concurrent.Pair
		pairSlot []int
		other    []int
	)
	for i, q := range s.Queries {
		if q.Type != QueryOverlap {
			other = append(other, i)
			continue
		}
		a, _ := s.Body(q.A)
		b, _ := s.Body(q.B)
		mode, _ := ParseMode(q.Mode)
		pairs = append(pairs, concurrent.Pair{Key: q.Name, A: a.Cached, B: b.Cached, Mode: mode})
		pairSlot = append(pairSlot, i)
	}

	pairResults, err := concurrent.TestPairs(ctx, pairs, r.workers)
	if err != nil {
		return nil, err
	}
	for i, pr := range pairResults {
		res := Result{Query: pr.Key, Type: QueryOverlap, Hit: pr.Overlap, Contacts: pr.Contacts}
		if pr.Overlap {
			if mtv, ok := pr.Contacts.MTV(); ok {
				res.MTV = &mtv
			}
			res.Along = pushAlong(pr.Contacts, s.Queries[pairSlot[i]].Along)
		}
		results[pairSlot[i]] = res
	}
	r.log.Debug("Overlap batch finished",
		log.Int("pairs", len(pairs)),
		log.Int("workers", r.workers),
	)

	otherResults, err := concurrent.ParallelMap(ctx, other, r.workers, func(_ context.Context, idx int) (Result, error) {
		return r.runQuery(s, s.Queries[idx]), nil
	})
	if err != nil {
		return nil, err
	}
	for i, res := range otherResults {
		results[other[i]] = res
	}

	hits := make([]string, 0, len(results))
	for _, res := range results {
		if !res.Hit {
			continue
		}
		hits = append(hits, res.Query)
		if res.Sweep != nil {
			r.log.Debug("Sweep hit",
				log.String("query", res.Query),
				log.String("target", res.Target),
				log.Float64("fraction", res.Sweep.Fraction),
			)
		}
	}

	r.log.Info("Scene queries finished",
		log.String("scene", s.Name),
		log.Int("queries", len(results)),
		log.Strings("hits", hits),
		log.Duration("elapsed", time.Since(started)),
	)
	return results, nil
}

func (r *Runner) runQuery(s *Scene, q QueryConfig) Result {
	switch q.Type {
	case QuerySweep:
		return sweepQuery(s, q)
	default:
		return raycastQuery(s, q)
	}
}

func sweepQuery(s *Scene, q QueryConfig) Result {
	res := Result{Query: q.Name, Type: QuerySweep}
	moving, _ := s.Body(q.Body)
	targets := s.Targets(q.Targets, q.Body)
	statics := make([]collision.Shape, len(targets))
	for i, t := range targets {
		statics[i] = t.Cached
	}

	hit, ok := collision.TestSweep(moving.Shape, q.Motion, statics)
	if !ok {
		return res
	}
	res.Hit = true
	res.Target = targets[hit.Index].ID
	res.Sweep = &hit
	return res
}

// pushAlong is the translation of B out of A along direction, or nil when
// direction is zero or no axis resolves along it.
func pushAlong(contacts collision.Contacts, direction collision.Vec2) *collision.Vec2 {
	if direction == (collision.Vec2{}) {
		return nil
	}
	direction = direction.Normalize()
	_, distance, ok := contacts.MinAlongAxis(direction)
	if !ok {
		return nil
	}
	push := direction.Mul(distance)
	return &push
}

// raycastQuery reports the target with the nearest entry in front of the
// origin.
func raycastQuery(s *Scene, q QueryConfig) Result {
	res := Result{Query: q.Name, Type: QueryRaycast}
	direction := q.Direction.Normalize()

	for _, t := range s.Targets(q.Targets, "") {
		hit, ok := collision.Raycast(q.Origin, direction, t.Shape)
		if !ok {
			continue
		}
		if res.Ray == nil || hit.Entry.Distance < res.Ray.Entry.Distance {
			res.Hit = true
			res.Target = t.ID
			res.Ray = &hit
		}
	}
	return res
}
