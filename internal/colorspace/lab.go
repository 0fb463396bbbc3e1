package colorspace

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab is a point in CIE L*a*b* space with a D65 reference white.
//
// Components use the conventional scale: L in [0,100], a and b roughly in
// [-128,127]. Euclidean distance in this space approximates perceived
// color difference, which makes it the preferred space for clustering.
type Lab struct {
	L float64 // Lightness: 0 (black) to 100 (white)
	A float64 // Green-red axis
	B float64 // Blue-yellow axis
}

// LabFromColor converts any image/color value to a Lab point.
//
// Fully transparent colors carry no chromatic information and convert to
// the zero value (black); callers are expected to mask such pixels out
// before clustering.
func LabFromColor(c color.Color) Lab {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Lab{}
	}
	l, a, b := cf.Lab()
	// go-colorful keeps Lab components divided by 100; restore the
	// conventional scale.
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// LabFromHex parses a hex color string such as "#aabbcc" into a Lab point.
func LabFromHex(s string) (Lab, error) {
	cf, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return Lab{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	l, a, b := cf.Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}, nil
}

// DistanceSq returns the squared Euclidean distance to other.
func (p Lab) DistanceSq(other Lab) float64 {
	dl := p.L - other.L
	da := p.A - other.A
	db := p.B - other.B
	return dl*dl + da*da + db*db
}

// Add returns the component-wise sum with other.
func (p Lab) Add(other Lab) Lab {
	return Lab{L: p.L + other.L, A: p.A + other.A, B: p.B + other.B}
}

// Scale returns the point with every component multiplied by f.
func (p Lab) Scale(f float64) Lab {
	return Lab{L: p.L * f, A: p.A * f, B: p.B * f}
}

// Luminance returns the L component.
func (p Lab) Luminance() float64 { return p.L }

// Channels returns the raw (L, a, b) triple.
func (p Lab) Channels() [3]float64 { return [3]float64{p.L, p.A, p.B} }

// NRGBA converts the point to an opaque 8-bit sRGB color, clamping values
// that fall outside the sRGB gamut.
func (p Lab) NRGBA() color.NRGBA {
	r, g, b := colorful.Lab(p.L/100, p.A/100, p.B/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the point as a "#rrggbb" string after gamut clamping.
func (p Lab) Hex() string {
	return colorful.Lab(p.L/100, p.A/100, p.B/100).Clamped().Hex()
}

func normalizeHex(s string) string {
	if len(s) > 0 && s[0] != '#' {
		return "#" + s
	}
	return s
}
