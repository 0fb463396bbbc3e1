package kmeans

import (
	"github.com/ironsheep/kmeans-colors/internal/colorspace"
)

// Match pairs a sample's nearest fixed-centroid index with the value to
// emit for that sample.
type Match[P colorspace.Point[P]] struct {
	// Index of the nearest fixed centroid.
	Index int

	// Value is the matched centroid's value, or the replacement set's
	// value at the same index when a replacement set was supplied.
	Value P
}

// MatchFixed assigns every sample to its nearest centroid from a fixed,
// externally supplied set. The centroids are never seeded or updated; this
// is a single exact-distance pass with no bounds or iteration, shared in
// spirit with the full-scan path of the iterator.
//
// If replacement is non-nil, the emitted value for each sample is the
// replacement centroid at the matched index instead of the fixed centroid
// itself; the two sets must have equal length or ErrMismatchedLength is
// returned. An empty fixed set returns ErrInvalidK. An empty sample slice
// yields an empty result.
func MatchFixed[P colorspace.Point[P]](samples []P, fixed []P, replacement []P) ([]Match[P], error) {
	if len(fixed) == 0 {
		return nil, ErrInvalidK
	}
	if replacement != nil && len(replacement) != len(fixed) {
		return nil, ErrMismatchedLength
	}

	values := fixed
	if replacement != nil {
		values = replacement
	}

	matches := make([]Match[P], len(samples))
	for i, s := range samples {
		best := 0
		min := s.DistanceSq(fixed[0])
		for j := 1; j < len(fixed); j++ {
			if d := s.DistanceSq(fixed[j]); d < min {
				min = d
				best = j
			}
		}
		matches[i] = Match[P]{Index: best, Value: values[best]}
	}
	return matches, nil
}

// MapToCentroids maps each assignment index to its centroid's value,
// producing a buffer index-aligned with the original samples. Indices out
// of range clamp to the last centroid.
func MapToCentroids[P colorspace.Point[P]](centroids []P, assignment []int) []P {
	out := make([]P, len(assignment))
	for i, idx := range assignment {
		if idx < 0 || idx >= len(centroids) {
			idx = len(centroids) - 1
		}
		out[i] = centroids[idx]
	}
	return out
}
