package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createInMemoryImage creates an in-memory test image filled with one color.
func createInMemoryImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLabPixelsAllOpaque(t *testing.T) {
	img := createInMemoryImage(3, 2, color.NRGBA{255, 0, 0, 255})

	samples, mask := LabPixels(img, false)
	if len(samples) != 6 {
		t.Fatalf("sample count: got %d, want 6", len(samples))
	}
	if len(mask) != 6 {
		t.Fatalf("mask length: got %d, want 6", len(mask))
	}
	for i, included := range mask {
		if !included {
			t.Errorf("mask[%d] false for an opaque pixel", i)
		}
	}
	for i := 1; i < len(samples); i++ {
		if samples[i] != samples[0] {
			t.Errorf("sample %d differs for a uniform image", i)
		}
	}
}

func TestLabPixelsExcludesTransparent(t *testing.T) {
	img := createInMemoryImage(2, 2, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(0, 1, color.NRGBA{10, 10, 10, 128})

	samples, mask := LabPixels(img, true)
	if len(samples) != 2 {
		t.Fatalf("sample count: got %d, want 2", len(samples))
	}
	wantMask := []bool{true, false, false, true}
	for i := range wantMask {
		if mask[i] != wantMask[i] {
			t.Errorf("mask[%d]: got %v, want %v", i, mask[i], wantMask[i])
		}
	}
}

func TestLabPixelsIncludesTransparentWhenUnmasked(t *testing.T) {
	img := createInMemoryImage(2, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0})

	samples, mask := LabPixels(img, false)
	if len(samples) != 2 {
		t.Fatalf("sample count: got %d, want 2", len(samples))
	}
	for i, included := range mask {
		if !included {
			t.Errorf("mask[%d] false with masking disabled", i)
		}
	}
}

func TestRGBPixelsValues(t *testing.T) {
	img := createInMemoryImage(1, 1, color.NRGBA{255, 0, 0, 255})

	samples, _ := RGBPixels(img, false)
	if len(samples) != 1 {
		t.Fatalf("sample count: got %d, want 1", len(samples))
	}
	s := samples[0]
	if math.Abs(s.R-1) > 1e-9 || math.Abs(s.G) > 1e-9 || math.Abs(s.B) > 1e-9 {
		t.Errorf("red pixel: got %+v, want {1 0 0}", s)
	}
}

func TestLabPixelsConsistentWithDirectConversion(t *testing.T) {
	// The memoized path must return the same value as converting each
	// pixel directly.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{120, 33, 250, 255})
	img.SetNRGBA(1, 0, color.NRGBA{120, 33, 250, 255})

	samples, _ := LabPixels(img, false)
	if samples[0] != samples[1] {
		t.Errorf("identical pixels converted differently: %+v vs %+v", samples[0], samples[1])
	}
}
