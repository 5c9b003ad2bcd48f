// Package runner drives the generate, solve and retry loop: it asks a Source
// for grids until one has a path from start to target.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/cache"
	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrNoStart is returned when a source yields a grid without a start.
	// Retrying cannot help since the source configuration is at fault.
	ErrNoStart = errors.New("runner: grid has no start")

	// ErrAttemptsExhausted is returned when MaxAttempts grids had no path.
	ErrAttemptsExhausted = errors.New("runner: attempts exhausted without a path")
)

// Runner repeats attempts until a solvable grid is found.
type Runner struct {
	Source Source
	// MaxAttempts bounds the number of grids tried; 0 means unbounded.
	MaxAttempts int
	// Cache, if set, is consulted before and filled after each search.
	Cache *cache.Cache
	// Logger receives one entry per attempt; nil discards.
	Logger logrus.FieldLogger
}

// Report describes the successful attempt.
type Report struct {
	Grid     *maze.Grid
	Result   *bfs.Result
	Attempts int
}

// Run loops until a grid with a path is found, the context is cancelled,
// the source fails or MaxAttempts is reached.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.Source == nil {
		return nil, errors.New("runner: no source")
	}
	logger := r.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	for attempt := 1; r.MaxAttempts <= 0 || attempt <= r.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := r.Source.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("runner: attempt %d: %w", attempt, err)
		}
		res, err := r.solve(g, logger)
		if err != nil {
			return nil, fmt.Errorf("runner: attempt %d: %w", attempt, err)
		}

		fields := logrus.Fields{
			"attempt":  attempt,
			"dim":      g.Dim(),
			"outcome":  res.Outcome.String(),
			"explored": res.Explored,
		}
		if res.Outcome == bfs.EmptyPath {
			fields["regions"] = len(g.Regions())
			fields["reachable"] = len(g.RegionOf(res.Start))
		}
		logger.WithFields(fields).Info("runner: attempt finished")

		switch res.Outcome {
		case bfs.Found:
			return &Report{Grid: g, Result: res, Attempts: attempt}, nil
		case bfs.NoStart:
			return nil, fmt.Errorf("%w (attempt %d)", ErrNoStart, attempt)
		}
	}
	return nil, fmt.Errorf("%w: %d attempts", ErrAttemptsExhausted, r.MaxAttempts)
}

func (r *Runner) solve(g *maze.Grid, logger logrus.FieldLogger) (*bfs.Result, error) {
	if res, ok := r.Cache.Get(g); ok {
		logger.WithField("key", string(cache.Key(g))).Debug("runner: cache hit")
		return res, nil
	}
	res, err := bfs.Solve(g, bfs.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if r.Cache != nil {
		if err := r.Cache.Put(g, res); err != nil {
			logger.WithError(err).Warn("runner: cache store failed")
		}
	}
	return res, nil
}
