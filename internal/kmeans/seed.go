package kmeans

import (
	"math"
	"math/rand"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
)

// Seed picks k initial centroids from samples using k-means++.
//
// The first centroid is drawn uniformly at random. Each subsequent
// centroid is drawn with probability proportional to the squared distance
// from each sample to its nearest already-chosen centroid, so centroids
// start spread apart. Every returned centroid equals some sample's value.
//
// If at some step every remaining sample coincides with a chosen centroid
// (total weight zero), the draw falls back to uniform sampling instead of
// failing, so the result always has exactly k centroids, possibly
// duplicated.
//
// Returns ErrEmptyInput if samples is empty, ErrInvalidK if k is zero or
// exceeds the sample count.
func Seed[P colorspace.Point[P]](samples []P, k int, rng *rand.Rand) ([]P, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if k < 1 || k > len(samples) {
		return nil, ErrInvalidK
	}

	centroids := make([]P, 0, k)
	centroids = append(centroids, samples[rng.Intn(len(samples))])

	// weights[i] tracks the squared distance from samples[i] to its
	// nearest chosen centroid; only the newest centroid can lower it.
	weights := make([]float64, len(samples))
	for i, s := range samples {
		weights[i] = s.DistanceSq(centroids[0])
	}

	for len(centroids) < k {
		newest := centroids[len(centroids)-1]
		total := 0.0
		for i, s := range samples {
			if d := s.DistanceSq(newest); d < weights[i] {
				weights[i] = d
			}
			total += weights[i]
		}

		// All samples coincide with chosen centroids: weighted sampling
		// would divide by zero, so pick uniformly instead.
		if total <= 0 || math.IsNaN(total) {
			centroids = append(centroids, samples[rng.Intn(len(samples))])
			continue
		}

		r := rng.Float64() * total
		next := len(samples) - 1
		for i, w := range weights {
			r -= w
			if r <= 0 {
				next = i
				break
			}
		}
		centroids = append(centroids, samples[next])
	}

	return centroids, nil
}
