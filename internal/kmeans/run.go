package kmeans

import (
	"math"
	"slices"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
)

// Result holds the outcome of a single clustering run.
type Result[P colorspace.Point[P]] struct {
	// Centroids are the final cluster means, index-aligned with the
	// assignment values.
	Centroids []P

	// Assignment maps each sample index to the index of its nearest
	// centroid. Always the same length as the input sample slice.
	Assignment []int

	// Score is the sum of squared distances from each sample to its
	// assigned centroid; lower is better.
	Score float64

	// Iterations is the number of assign/update passes performed.
	Iterations int

	// Converged reports whether the run stopped because the score
	// improvement fell below the threshold rather than hitting the
	// iteration cap.
	Converged bool
}

// Run clusters samples starting from the given centroids using Hamerly's
// accelerated variant of Lloyd's algorithm.
//
// The initial centroid slice is not modified; each run owns a private
// copy. Iteration stops once the score improves by less than threshold
// between consecutive passes (Converged is true) or after maxIter passes
// (Converged is false). A maxIter below 1 is treated as 1.
//
// Hamerly's acceleration caches a per-sample upper bound on the distance
// to its current centroid and a lower bound on the distance to every other
// centroid. When the bounds prove an assignment cannot have changed, the
// per-centroid distance scan is skipped. The bounds only ever eliminate
// provably redundant work: the result is identical to RunLloyd from the
// same initial centroids.
//
// A single centroid needs no iteration at all; it is placed at the mean of
// all samples after one trivially converged pass.
//
// Returns ErrEmptyInput if samples is empty, ErrInvalidK if the centroid
// count is zero or exceeds the sample count, and ErrNumeric if a
// non-finite score is produced.
func Run[P colorspace.Point[P]](samples []P, centroids []P, maxIter int, threshold float64) (*Result[P], error) {
	cent, err := prepareRun(samples, centroids)
	if err != nil {
		return nil, err
	}
	if len(cent) == 1 {
		return runSingle(samples, cent)
	}
	return runHamerly(samples, cent, maxIter, threshold)
}

// RunLloyd clusters samples with the brute-force reference algorithm,
// recomputing every sample-to-centroid distance on every pass.
//
// It accepts the same arguments and produces the same result as Run; it
// exists so the accelerated path can be checked against it.
func RunLloyd[P colorspace.Point[P]](samples []P, centroids []P, maxIter int, threshold float64) (*Result[P], error) {
	cent, err := prepareRun(samples, centroids)
	if err != nil {
		return nil, err
	}
	if len(cent) == 1 {
		return runSingle(samples, cent)
	}
	return runLloyd(samples, cent, maxIter, threshold)
}

func prepareRun[P colorspace.Point[P]](samples []P, centroids []P) ([]P, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if len(centroids) < 1 || len(centroids) > len(samples) {
		return nil, ErrInvalidK
	}
	return slices.Clone(centroids), nil
}

// runSingle handles k=1: the optimal centroid is simply the mean.
func runSingle[P colorspace.Point[P]](samples []P, cent []P) (*Result[P], error) {
	cent[0] = colorspace.Mean(samples)
	assign := make([]int, len(samples))
	score := 0.0
	for _, s := range samples {
		score += s.DistanceSq(cent[0])
	}
	if !isFinite(score) {
		return nil, ErrNumeric
	}
	return &Result[P]{
		Centroids:  cent,
		Assignment: assign,
		Score:      score,
		Iterations: 1,
		Converged:  true,
	}, nil
}

func runHamerly[P colorspace.Point[P]](samples []P, cent []P, maxIter int, threshold float64) (*Result[P], error) {
	if maxIter < 1 {
		maxIter = 1
	}
	k := len(cent)
	n := len(samples)

	assign := make([]int, n)
	upper := make([]float64, n)
	lower := make([]float64, n)
	for i := range upper {
		upper[i] = math.Inf(1)
	}

	half := make([]float64, k)
	deltas := make([]float64, k)
	sums := make([]P, k)
	counts := make([]int, k)

	res := &Result[P]{Centroids: cent, Assignment: assign}
	prevScore := math.Inf(1)

	for iter := 1; ; iter++ {
		// Half the distance from each centroid to its nearest other
		// centroid; a sample within this radius of its centroid cannot
		// belong anywhere else.
		for i := range cent {
			min := math.Inf(1)
			for j := range cent {
				if i == j {
					continue
				}
				if d := cent[i].DistanceSq(cent[j]); d < min {
					min = d
				}
			}
			half[i] = math.Sqrt(min) * 0.5
		}

		for i, s := range samples {
			z := half[assign[i]]
			if lower[i] > z {
				z = lower[i]
			}
			if upper[i] <= z {
				continue
			}

			// Tighten the upper bound to the exact distance before
			// falling back to the full scan.
			upper[i] = math.Sqrt(s.DistanceSq(cent[assign[i]]))
			if upper[i] <= z {
				continue
			}

			min1 := s.DistanceSq(cent[0])
			min2 := math.Inf(1)
			best := 0
			for j := 1; j < k; j++ {
				d := s.DistanceSq(cent[j])
				if d < min1 {
					min2 = min1
					min1 = d
					best = j
					continue
				}
				if d < min2 {
					min2 = d
				}
			}

			if best != assign[i] {
				assign[i] = best
				upper[i] = math.Sqrt(min1)
			}
			lower[i] = math.Sqrt(min2)
		}

		// Move each centroid to the mean of its samples, recording how
		// far it moved. A centroid that lost all its samples keeps its
		// previous position; its delta is zero, so the bound update below
		// leaves its samples' bounds untouched.
		var zero P
		for j := range sums {
			sums[j] = zero
			counts[j] = 0
		}
		for i, s := range samples {
			sums[assign[i]] = sums[assign[i]].Add(s)
			counts[assign[i]]++
		}
		maxDelta := 0.0
		for j := range cent {
			if counts[j] == 0 {
				deltas[j] = 0
				continue
			}
			next := sums[j].Scale(1 / float64(counts[j]))
			deltas[j] = math.Sqrt(cent[j].DistanceSq(next))
			cent[j] = next
			if deltas[j] > maxDelta {
				maxDelta = deltas[j]
			}
		}

		// Keep the bounds sound after the centroids moved: a sample's
		// centroid moved at most deltas[assign], every other centroid at
		// most maxDelta.
		for i := range samples {
			upper[i] += deltas[assign[i]]
			lower[i] -= maxDelta
		}

		score := 0.0
		for i, s := range samples {
			score += s.DistanceSq(cent[assign[i]])
		}
		if !isFinite(score) {
			return nil, ErrNumeric
		}

		res.Score = score
		res.Iterations = iter
		if prevScore-score < threshold {
			res.Converged = true
			return res, nil
		}
		if iter >= maxIter {
			return res, nil
		}
		prevScore = score
	}
}

func runLloyd[P colorspace.Point[P]](samples []P, cent []P, maxIter int, threshold float64) (*Result[P], error) {
	if maxIter < 1 {
		maxIter = 1
	}
	k := len(cent)
	n := len(samples)

	assign := make([]int, n)
	sums := make([]P, k)
	counts := make([]int, k)

	res := &Result[P]{Centroids: cent, Assignment: assign}
	prevScore := math.Inf(1)

	for iter := 1; ; iter++ {
		for i, s := range samples {
			best := 0
			min := s.DistanceSq(cent[0])
			for j := 1; j < k; j++ {
				if d := s.DistanceSq(cent[j]); d < min {
					min = d
					best = j
				}
			}
			assign[i] = best
		}

		var zero P
		for j := range sums {
			sums[j] = zero
			counts[j] = 0
		}
		for i, s := range samples {
			sums[assign[i]] = sums[assign[i]].Add(s)
			counts[assign[i]]++
		}
		for j := range cent {
			if counts[j] > 0 {
				cent[j] = sums[j].Scale(1 / float64(counts[j]))
			}
		}

		score := 0.0
		for i, s := range samples {
			score += s.DistanceSq(cent[assign[i]])
		}
		if !isFinite(score) {
			return nil, ErrNumeric
		}

		res.Score = score
		res.Iterations = iter
		if prevScore-score < threshold {
			res.Converged = true
			return res, nil
		}
		if iter >= maxIter {
			return res, nil
		}
		prevScore = score
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
