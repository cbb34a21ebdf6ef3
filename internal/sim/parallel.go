package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/swingby/internal/dynamo"
)

// Sweep runs independent parameter sets concurrently, at most workers at a
// time (unlimited when workers <= 0). Results are index-aligned with
// params. The first failure cancels the remaining runs.
func Sweep(ctx context.Context, integrator dynamo.Integrator, params []dynamo.Params, workers int) ([]*dynamo.Result, error) {
	results := make([]*dynamo.Result, len(params))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, p := range params {
		i, p := i, p
		g.Go(func() error {
			r, err := New(integrator).RunResult(ctx, p)
			if err != nil {
				return fmt.Errorf("sweep run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
