// Package kmeans implements accelerated k-means clustering over generic
// color points.
//
// The pipeline is seed, iterate, select:
//   - Seed picks initial centroids with the k-means++ strategy of Arthur
//     and Vassilvitskii, biasing them toward being spread apart.
//   - Run iterates Lloyd's assign/update loop to convergence using
//     Hamerly's bound-tracking acceleration, which skips distance
//     computations that provably cannot change an assignment. RunLloyd is
//     the unaccelerated reference; both produce identical results from
//     identical initial centroids.
//   - BestOf repeats seed+run several times with derived seeds and keeps
//     the result with the lowest score (sum of squared distances from each
//     sample to its assigned centroid).
//
// MatchFixed covers the degenerate case of a caller-supplied centroid set
// that must not move: a single assignment pass with no seeding, bounds, or
// iteration.
//
// # Determinism
//
// All randomness is threaded explicitly. Given the same samples, k, and
// seed, repeated invocations produce identical centroids and assignments,
// and BestOf selects the same run whether its runs execute sequentially or
// concurrently.
//
// # Reference
//
// Hamerly, G. (2010). Making k-means even faster. SIAM international
// conference on data mining.
package kmeans
