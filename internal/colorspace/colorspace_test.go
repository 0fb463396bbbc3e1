package colorspace

import (
	"image/color"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLabDistanceSq(t *testing.T) {
	a := Lab{L: 10, A: 0, B: 0}
	b := Lab{L: 10, A: 3, B: 4}

	if d := a.DistanceSq(a); d != 0 {
		t.Errorf("distance to self: got %v, want 0", d)
	}
	if d := a.DistanceSq(b); d != 25 {
		t.Errorf("DistanceSq: got %v, want 25", d)
	}
	if a.DistanceSq(b) != b.DistanceSq(a) {
		t.Error("DistanceSq is not symmetric")
	}
}

func TestMean(t *testing.T) {
	points := []Lab{
		{L: 0, A: -10, B: 4},
		{L: 10, A: 10, B: 4},
	}
	m := Mean(points)
	want := Lab{L: 5, A: 0, B: 4}
	if !almostEqual(m.L, want.L, 1e-12) || !almostEqual(m.A, want.A, 1e-12) || !almostEqual(m.B, want.B, 1e-12) {
		t.Errorf("Mean: got %+v, want %+v", m, want)
	}

	var empty []Lab
	if m := Mean(empty); m != (Lab{}) {
		t.Errorf("Mean of empty slice: got %+v, want zero value", m)
	}
}

func TestLabFromColorExtremes(t *testing.T) {
	white := LabFromColor(color.NRGBA{255, 255, 255, 255})
	if !almostEqual(white.L, 100, 0.1) {
		t.Errorf("white lightness: got %v, want ~100", white.L)
	}

	black := LabFromColor(color.NRGBA{0, 0, 0, 255})
	if !almostEqual(black.L, 0, 0.1) {
		t.Errorf("black lightness: got %v, want ~0", black.L)
	}

	if white.Luminance() <= black.Luminance() {
		t.Error("white must have higher luminance than black")
	}
}

func TestLabHexRoundTrip(t *testing.T) {
	tests := []string{"#ff0000", "#00ff00", "#0000ff", "#808080", "#123456"}
	for _, hex := range tests {
		p, err := LabFromHex(hex)
		if err != nil {
			t.Fatalf("LabFromHex(%q) failed: %v", hex, err)
		}
		if got := p.Hex(); got != hex {
			t.Errorf("round trip %q: got %q", hex, got)
		}
	}
}

func TestLabFromHexInvalid(t *testing.T) {
	if _, err := LabFromHex("not-a-color"); err == nil {
		t.Error("expected error for invalid hex string")
	}
}

func TestLabFromHexWithoutHash(t *testing.T) {
	withHash, err := LabFromHex("#aabbcc")
	if err != nil {
		t.Fatalf("LabFromHex failed: %v", err)
	}
	without, err := LabFromHex("aabbcc")
	if err != nil {
		t.Fatalf("LabFromHex without hash failed: %v", err)
	}
	if withHash != without {
		t.Errorf("hash-less parse differs: %+v vs %+v", withHash, without)
	}
}

func TestRGBConversions(t *testing.T) {
	p := RGBFromColor(color.NRGBA{255, 0, 0, 255})
	if !almostEqual(p.R, 1, 1e-9) || !almostEqual(p.G, 0, 1e-9) || !almostEqual(p.B, 0, 1e-9) {
		t.Errorf("RGBFromColor red: got %+v", p)
	}

	nrgba := p.NRGBA()
	want := color.NRGBA{255, 0, 0, 255}
	if nrgba != want {
		t.Errorf("NRGBA: got %+v, want %+v", nrgba, want)
	}

	if got := p.Hex(); got != "#ff0000" {
		t.Errorf("Hex: got %q, want #ff0000", got)
	}
}

func TestRGBLuminanceOrdering(t *testing.T) {
	black := RGB{}
	gray := RGB{R: 0.5, G: 0.5, B: 0.5}
	white := RGB{R: 1, G: 1, B: 1}

	if !(black.Luminance() < gray.Luminance() && gray.Luminance() < white.Luminance()) {
		t.Errorf("luminance ordering violated: %v %v %v",
			black.Luminance(), gray.Luminance(), white.Luminance())
	}
	if !almostEqual(white.Luminance(), 1, 1e-9) {
		t.Errorf("white luminance: got %v, want 1", white.Luminance())
	}
}

func TestChannels(t *testing.T) {
	lab := Lab{L: 50, A: -3, B: 7}
	if got := lab.Channels(); got != [3]float64{50, -3, 7} {
		t.Errorf("Lab channels: got %v", got)
	}
	rgb := RGB{R: 0.25, G: 0.5, B: 0.75}
	if got := rgb.Channels(); got != [3]float64{0.25, 0.5, 0.75} {
		t.Errorf("RGB channels: got %v", got)
	}
}

func TestRGBNRGBAClampsGamut(t *testing.T) {
	p := RGB{R: 1.5, G: -0.2, B: 0.5}
	nrgba := p.NRGBA()
	if nrgba.R != 255 || nrgba.G != 0 {
		t.Errorf("expected clamped components, got %+v", nrgba)
	}
}
