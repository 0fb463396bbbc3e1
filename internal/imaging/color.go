package imaging

import (
	"fmt"
	"image/color"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color
// space, which is often more intuitive to read than RGB when inspecting a
// palette.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a swatch color in multiple representations, suited
// to terminal output and machine-readable reporting alike.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// Describe converts an 8-bit color into its reporting representations.
func Describe(c color.NRGBA) ColorResult {
	return ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: rgbToHSL(c.R, c.G, c.B),
	}
}

// rgbToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
func rgbToHSL(r, g, b uint8) HSLColor {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := rf
	if gf > max {
		max = gf
	}
	if bf > max {
		max = bf
	}

	min := rf
	if gf < min {
		min = gf
	}
	if bf < min {
		min = bf
	}

	l := (max + min) / 2.0

	if max == min {
		return HSLColor{H: 0, S: 0, L: int(l * 100)}
	}

	var s float64
	if l < 0.5 {
		s = (max - min) / (max + min)
	} else {
		s = (max - min) / (2.0 - max - min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / (max - min)
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/(max-min)
	case bf:
		h = 4.0 + (rf-gf)/(max-min)
	}
	h *= 60

	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
