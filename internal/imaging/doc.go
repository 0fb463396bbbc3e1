// Package imaging bridges decoded images and the clustering engine.
//
// It handles everything the engine deliberately does not: loading and
// caching image files, flattening pixels into color-space sample buffers,
// excluding transparent pixels before clustering, assembling recolored
// output images, and rendering palette swatch strips.
//
// # Transparency
//
// The clustering engine has no concept of masking. When transparent
// pixels are to be excluded, the pixel extraction functions drop them from
// the sample buffer and report the exclusions through an index-aligned
// mask; the rendering functions consume the same mask to emit fully
// transparent pixels at the excluded positions.
//
// # Coordinate System
//
// Pixels are flattened in row-major order with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward. Sample buffer
// order is stable for the lifetime of a clustering request, which is what
// ties assignment indices back to pixel positions.
package imaging
