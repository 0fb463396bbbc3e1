package colorspace

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a point in plain sRGB space with components in [0,1].
//
// Distances in this space are cheap but correlate poorly with perceived
// color difference; prefer Lab unless conversion cost dominates.
type RGB struct {
	R float64
	G float64
	B float64
}

// RGBFromColor converts any image/color value to an RGB point.
// Fully transparent colors convert to the zero value (black).
func RGBFromColor(c color.Color) RGB {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RGB{}
	}
	return RGB{R: cf.R, G: cf.G, B: cf.B}
}

// RGBFromHex parses a hex color string such as "#aabbcc" into an RGB point.
func RGBFromHex(s string) (RGB, error) {
	cf, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: cf.R, G: cf.G, B: cf.B}, nil
}

// DistanceSq returns the squared Euclidean distance to other.
func (p RGB) DistanceSq(other RGB) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return dr*dr + dg*dg + db*db
}

// Add returns the component-wise sum with other.
func (p RGB) Add(other RGB) RGB {
	return RGB{R: p.R + other.R, G: p.G + other.G, B: p.B + other.B}
}

// Scale returns the point with every component multiplied by f.
func (p RGB) Scale(f float64) RGB {
	return RGB{R: p.R * f, G: p.G * f, B: p.B * f}
}

// Luminance returns the Rec. 709 luma of the point.
func (p RGB) Luminance() float64 {
	return 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
}

// Channels returns the raw (R, G, B) triple.
func (p RGB) Channels() [3]float64 { return [3]float64{p.R, p.G, p.B} }

// NRGBA converts the point to an opaque 8-bit sRGB color, clamping
// components outside [0,1].
func (p RGB) NRGBA() color.NRGBA {
	r, g, b := colorful.Color{R: p.R, G: p.G, B: p.B}.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the point as a "#rrggbb" string after clamping.
func (p RGB) Hex() string {
	return colorful.Color{R: p.R, G: p.G, B: p.B}.Clamped().Hex()
}
