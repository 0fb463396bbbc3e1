// Package palette turns a clustering result into an ordered, weighted
// list of swatches.
//
// Each entry pairs a centroid with the fraction of samples assigned to it;
// weights across a palette sum to 1. Entries are ordered either from
// darkest to lightest (the default) or from most- to least-represented.
// Clusters that ended up with no samples are omitted.
package palette
