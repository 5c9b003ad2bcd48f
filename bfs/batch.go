package bfs

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/maze"
)

// SolveAll solves independent grids in parallel with at most workers
// concurrent searches (runtime.NumCPU() when workers ≤ 0). Results are
// index-aligned with grids. Every search runs to completion; ctx is only
// consulted before a grid is started, and the first error cancels the rest.
func SolveAll(ctx context.Context, grids []*maze.Grid, workers int, opts ...Option) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*Result, len(grids))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, g := range grids {
		if gctx.Err() != nil {
			break
		}
		i, g := i, g
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Solve(g, opts...)
			if err != nil {
				return fmt.Errorf("bfs: grid %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
