// Package colorspace defines the numeric capability set the clustering
// engine is parametric over, plus concrete adapters for two color
// representations.
//
// The engine never assumes a specific color model. Any type implementing
// Point can be clustered: it must supply a squared-distance metric,
// component-wise addition and scalar scaling (used to compute means), a
// scalar lightness projection (used to order palettes), and access to its
// raw component triple.
//
// # Provided adapters
//
// Two adapters are included:
//   - Lab: CIE L*a*b* with a D65 reference white, a perceptually uniform
//     space where Euclidean distance approximates visual difference.
//     Components use the conventional scale (L in [0,100], a and b roughly
//     in [-128,127]).
//   - RGB: plain sRGB tristimulus with components in [0,1]. Cheaper to
//     convert but distances correlate poorly with perceived difference.
//
// Conversions between adapters and image/color values go through
// github.com/lucasb-eyer/go-colorful.
package colorspace
