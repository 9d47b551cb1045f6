// Package sweep runs the cascade over many seeds in parallel and summarizes
// the spread of tier counts across replicates.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cascade-sim/cascade-sim/sim"
)

// Config describes a replicate sweep.
type Config struct {
	Scenario sim.Scenario
	Seeds    []int64
	Params   sim.Parameters
	Workers  int // 0 = GOMAXPROCS
}

// SeedRange returns count consecutive seeds starting at first.
func SeedRange(first int64, count int) []int64 {
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}

// Run simulates every seed and returns results in the order of cfg.Seeds.
// Each seed owns its RNG, so the output does not depend on Workers.
func Run(ctx context.Context, cfg Config) ([]*sim.Result, error) {
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be non-negative, got %d", cfg.Workers)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*sim.Result, len(cfg.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range cfg.Seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, _ := sim.SimulateScenario(cfg.Scenario, seed, cfg.Params)
			results[i] = r
			logrus.Debugf("replicate %d/%d (seed %d) done", i+1, len(cfg.Seeds), seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("replicate sweep: %w", err)
	}
	return results, nil
}
