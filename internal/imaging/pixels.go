package imaging

import (
	"image"
	"image/color"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
)

// LabPixels flattens an image into a buffer of Lab samples.
//
// When opaqueOnly is true, pixels that are not fully opaque are excluded
// from the sample buffer entirely; the engine never sees them. The
// returned mask has one element per pixel in row-major order and is true
// where the pixel contributed a sample, so callers can line assignment
// indices back up with pixel positions.
//
// The sRGB-to-Lab transform is the dominant cost for large images, so
// conversions are memoized per distinct 8-bit RGBA value; photographs
// rarely contain more than a few hundred thousand distinct values.
func LabPixels(img image.Image, opaqueOnly bool) ([]colorspace.Lab, []bool) {
	cache := make(map[color.NRGBA]colorspace.Lab)
	return extractPixels(img, opaqueOnly, func(c color.NRGBA) colorspace.Lab {
		p, ok := cache[c]
		if !ok {
			p = colorspace.LabFromColor(c)
			cache[c] = p
		}
		return p
	})
}

// RGBPixels flattens an image into a buffer of RGB samples with the same
// masking behavior as LabPixels. The conversion is a plain byte-to-float
// scale, so no memoization is needed.
func RGBPixels(img image.Image, opaqueOnly bool) ([]colorspace.RGB, []bool) {
	return extractPixels(img, opaqueOnly, func(c color.NRGBA) colorspace.RGB {
		return colorspace.RGBFromColor(c)
	})
}

func extractPixels[P any](img image.Image, opaqueOnly bool, convert func(color.NRGBA) P) ([]P, []bool) {
	bounds := img.Bounds()
	samples := make([]P, 0, bounds.Dx()*bounds.Dy())
	mask := make([]bool, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if opaqueOnly && c.A != 255 {
				mask = append(mask, false)
				continue
			}
			samples = append(samples, convert(c))
			mask = append(mask, true)
		}
	}
	return samples, mask
}
