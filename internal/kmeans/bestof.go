package kmeans

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
)

// BestOf performs runs independent seed+Run executions and returns the
// result with the lowest score.
//
// Each run i seeds its own random source with seed+i, so the whole
// selection is reproducible from a single seed value. Runs share the
// read-only sample slice but own their centroids and bound state, which
// makes them safe to execute concurrently; BestOf does so, but reduces the
// collected results in run order with a strictly-lower comparison, so the
// earliest run wins ties and the selected result is identical to a
// sequential execution.
//
// A runs value below 1 is treated as 1. Validation errors (ErrInvalidK,
// ErrEmptyInput) and ErrNumeric propagate from the underlying runs.
func BestOf[P colorspace.Point[P]](samples []P, k, runs, maxIter int, threshold float64, seed int64) (*Result[P], error) {
	if runs < 1 {
		runs = 1
	}

	results := make([]*Result[P], runs)
	var g errgroup.Group
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			centroids, err := Seed(samples, k, rng)
			if err != nil {
				return err
			}
			res, err := Run(samples, centroids, maxIter, threshold)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, res := range results[1:] {
		if res.Score < best.Score {
			best = res
		}
	}
	return best, nil
}
