package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
	"github.com/ironsheep/kmeans-colors/internal/palette"
)

// renderable is a color point that can also be rasterized.
type renderable[P any] interface {
	colorspace.Point[P]
	NRGBA() color.NRGBA
}

// Recolor assembles an output image from per-sample color values.
//
// values holds one color per unmasked pixel in row-major order (typically
// the result of kmeans.MapToCentroids or the values of kmeans.MatchFixed).
// mask must have exactly width*height elements; positions where it is
// false receive a fully transparent pixel and consume no value.
func Recolor[P renderable[P]](values []P, mask []bool, width, height int) (*image.NRGBA, error) {
	if len(mask) != width*height {
		return nil, fmt.Errorf("mask length %d does not match %dx%d image", len(mask), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	cursor := 0
	for i, included := range mask {
		if !included {
			continue
		}
		if cursor >= len(values) {
			return nil, fmt.Errorf("mask admits more pixels than the %d values supplied", len(values))
		}
		x, y := i%width, i/width
		img.SetNRGBA(x, y, values[cursor].NRGBA())
		cursor++
	}
	if cursor != len(values) {
		return nil, fmt.Errorf("mask admits %d pixels but %d values supplied", cursor, len(values))
	}
	return img, nil
}

// PaletteStrip renders palette entries as a horizontal strip of swatches.
//
// A width of 0 defaults to height*len(entries); widths below len(entries)
// are raised so every swatch gets at least one column. With proportional
// set, each swatch's width follows its weight, with boundaries clamped to
// the image width; otherwise swatches are equal-width.
func PaletteStrip[P renderable[P]](entries []palette.Entry[P], width, height int, proportional bool) (*image.NRGBA, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("cannot render an empty palette")
	}
	if height < 1 {
		height = 1
	}
	if width == 0 {
		width = height * len(entries)
	}
	if width < len(entries) {
		width = len(entries)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	if !proportional {
		n := float64(len(entries))
		for x := 0; x < width; x++ {
			idx := int(math.Round(float64(x)/float64(width)*n - 0.5))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(entries) {
				idx = len(entries) - 1
			}
			fillColumn(img, x, height, entries[idx].Color.NRGBA())
		}
		return img, nil
	}

	pos := 0
	for i, e := range entries {
		boundary := width
		if i < len(entries)-1 {
			boundary = pos + int(math.Round(e.Weight*float64(width)))
			if boundary > width {
				boundary = width
			}
		}
		for x := pos; x < boundary; x++ {
			fillColumn(img, x, height, e.Color.NRGBA())
		}
		pos = boundary
		if pos == width {
			break
		}
	}
	return img, nil
}

func fillColumn(img *image.NRGBA, x, height int, c color.NRGBA) {
	for y := 0; y < height; y++ {
		img.SetNRGBA(x, y, c)
	}
}

// SaveImage encodes img to path, choosing the encoder from the file
// extension. PNG, JPEG, and BMP are supported; unrecognized extensions
// fall back to PNG.
func SaveImage(path string, img image.Image) error {
	var enc imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(95)
	case ".bmp":
		enc = imgio.BMPEncoder()
	default:
		enc = imgio.PNGEncoder()
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
