package neighborjoin

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BuildBatch constructs one tree per input matrix, all against the same
// label set, running up to cfg.Workers builds concurrently. This is the
// shape of bootstrap analysis: many same-size replicate distance matrices
// over the same taxa. Results are returned in input order.
//
// Each individual build runs its Q scan sequentially (the parallelism
// budget is spent across matrices, not within one). The first failing
// matrix aborts the batch: its error is returned, tagged with the matrix
// index, and ctx cancellation is honored between builds.
func BuildBatch[F Float](ctx context.Context, matrices [][]F, n int, labels []string, cfg Config) ([]*Tree[F], error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	inner := cfg
	inner.Workers = 1

	trees := make([]*Tree[F], len(matrices))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for idx, dm := range matrices {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Build(dm, n, labels, inner)
			if err != nil {
				return fmt.Errorf("matrix %d: %w", idx, err)
			}
			trees[idx] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
