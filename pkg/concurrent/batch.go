package concurrent

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/collide/pkg/collision"
	"github.com/zeusync/collide/pkg/generic"
)

// Pair is one narrow-phase test. Key identifies the pair and decides which
// worker runs it.
type Pair struct {
	Key  string
	A, B collision.Shape
	Mode collision.Mode
}

type PairResult struct {
	Key      string
	Contacts collision.Contacts
	Overlap  bool
}

// TestPairs runs every pair through a collision.Solver. Pairs are sharded by
// key hash so each worker owns one solver and its scratch buffers. Results
// keep the order of pairs.
func TestPairs(ctx context.Context, pairs []Pair, workers int) ([]PairResult, error) {
	workers = max(min(workers, len(pairs)), 1)
	shards := make([][]int, workers)
	for i, p := range pairs {
		shard := ShardOf(p.Key, workers)
		shards[shard] = append(shards[shard], i)
	}

	results := make([]PairResult, len(pairs))
	solvers := generic.NewHotPool[*collision.Solver](collision.NewSolver, nil, workers)
	errGroup, ctx := errgroup.WithContext(ctx)
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		errGroup.Go(func() error {
			solver := solvers.Get()
			defer solvers.Put(solver)
			for _, idx := range shard {
				if err := ctx.Err(); err != nil {
					return err
				}
				p := pairs[idx]
				contacts, overlap := solver.Test(p.A, p.B, p.Mode, nil)
				results[idx] = PairResult{Key: p.Key, Contacts: contacts, Overlap: overlap}
			}
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ShardOf maps key onto one of n workers.
func ShardOf(key string, n int) int {
	if n <= 1 {
		return 0
	}
	return int(xxhash.Sum64String(key) % uint64(n))
}
