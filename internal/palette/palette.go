package palette

import (
	"sort"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
	"github.com/ironsheep/kmeans-colors/internal/kmeans"
)

// Entry is a single palette swatch derived from a clustering result.
type Entry[P colorspace.Point[P]] struct {
	// Color is the centroid's value.
	Color P

	// Weight is the fraction of samples assigned to this centroid, in
	// (0,1]; weights across a palette sum to 1.
	Weight float64

	// Count is the number of samples assigned to this centroid.
	Count int

	// Index is the centroid's position in the run result it came from,
	// letting callers map sorted entries back to assignment values.
	Index int
}

// SortMode selects the presentation order of a palette.
type SortMode int

const (
	// SortLuminance orders entries from darkest to lightest. This is the
	// default ordering.
	SortLuminance SortMode = iota

	// SortFrequency orders entries from most- to least-represented.
	SortFrequency
)

// Build derives a sorted palette from a clustering result.
//
// Frequency weights are always computed regardless of the sort mode; the
// mode only controls presentation order. Centroids with no assigned
// samples are omitted. Returns kmeans.ErrEmptyInput for a result with no
// centroids or no assignment.
func Build[P colorspace.Point[P]](res *kmeans.Result[P], mode SortMode) ([]Entry[P], error) {
	if res == nil || len(res.Centroids) == 0 || len(res.Assignment) == 0 {
		return nil, kmeans.ErrEmptyInput
	}

	counts := make([]int, len(res.Centroids))
	for _, idx := range res.Assignment {
		counts[idx]++
	}

	total := float64(len(res.Assignment))
	entries := make([]Entry[P], 0, len(res.Centroids))
	for i, c := range res.Centroids {
		if counts[i] == 0 {
			continue
		}
		entries = append(entries, Entry[P]{
			Color:  c,
			Weight: float64(counts[i]) / total,
			Count:  counts[i],
			Index:  i,
		})
	}

	switch mode {
	case SortFrequency:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Weight > entries[j].Weight
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Color.Luminance() < entries[j].Color.Luminance()
		})
	}

	return entries, nil
}

// Dominant returns the entry with the largest weight, favoring the
// earliest on ties. The second return value is false for an empty palette.
func Dominant[P colorspace.Point[P]](entries []Entry[P]) (Entry[P], bool) {
	if len(entries) == 0 {
		var zero Entry[P]
		return zero, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}
	return best, true
}
