package validation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ternary.dev/ledger/bundle"
)

// ValidateMany validates bundles concurrently with at most workers goroutines.
// Each bundle gets its own sponge. The first error cancels the remaining work.
func ValidateMany(ctx context.Context, bundles []bundle.Bundle, opts Options, workers int) ([]bool, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]bool, len(bundles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range bundles {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := Validate(bundles[i], opts)
			if err != nil {
				return fmt.Errorf("bundle %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
