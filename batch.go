package smooth

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SmoothAll smooths independent paths concurrently on at most
// Config.Workers goroutines. Results are returned in input order.
//
// If any path fails, SmoothAll returns the error of the lowest failing index,
// wrapped with that index, and no results. Cancelling ctx stops paths that
// have not started yet and returns ctx.Err().
func (s *Smoother) SmoothAll(ctx context.Context, paths []*Path) ([]*Path, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(paths))

	results := make([]*Path, len(paths))
	errs := make([]error, len(paths))

	// Per-path failures are collected in errs so the lowest index wins;
	// the group only carries cancellation.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = s.Smooth(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("smooth: path %d: %w", i, err)
		}
	}

	Logger().Debug("smooth: batch smoothed", "paths", len(paths), "workers", workers)
	return results, nil
}
