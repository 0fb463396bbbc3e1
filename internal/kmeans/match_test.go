package kmeans

import (
	"errors"
	"testing"

	"github.com/ironsheep/kmeans-colors/internal/colorspace"
)

func TestMatchFixedBlackWhite(t *testing.T) {
	black := colorspace.Lab{L: 0}
	white := colorspace.Lab{L: 100}
	samples := []colorspace.Lab{black, white, black, black, white}

	matches, err := MatchFixed(samples, []colorspace.Lab{black, white}, nil)
	if err != nil {
		t.Fatalf("MatchFixed failed: %v", err)
	}
	if len(matches) != len(samples) {
		t.Fatalf("match count: got %d, want %d", len(matches), len(samples))
	}

	for i, m := range matches {
		wantIdx := 0
		if samples[i] == white {
			wantIdx = 1
		}
		if m.Index != wantIdx {
			t.Errorf("sample %d: got index %d, want %d", i, m.Index, wantIdx)
		}
		if m.Value != samples[i] {
			t.Errorf("sample %d: got value %+v, want zero residual match %+v", i, m.Value, samples[i])
		}
	}
}

func TestMatchFixedReplacement(t *testing.T) {
	samples := []colorspace.Lab{{L: 10}, {L: 90}}
	fixed := []colorspace.Lab{{L: 0}, {L: 100}}
	replacement := []colorspace.Lab{{L: 100}, {L: 0}}

	matches, err := MatchFixed(samples, fixed, replacement)
	if err != nil {
		t.Fatalf("MatchFixed failed: %v", err)
	}

	if matches[0].Index != 0 || matches[0].Value != replacement[0] {
		t.Errorf("sample 0: got %+v, want index 0 with replacement value", matches[0])
	}
	if matches[1].Index != 1 || matches[1].Value != replacement[1] {
		t.Errorf("sample 1: got %+v, want index 1 with replacement value", matches[1])
	}
}

func TestMatchFixedMismatchedLength(t *testing.T) {
	samples := []colorspace.Lab{{L: 10}}
	fixed := []colorspace.Lab{{L: 0}, {L: 100}}
	replacement := []colorspace.Lab{{L: 50}}

	if _, err := MatchFixed(samples, fixed, replacement); !errors.Is(err, ErrMismatchedLength) {
		t.Errorf("got %v, want ErrMismatchedLength", err)
	}
}

func TestMatchFixedEmptyCentroids(t *testing.T) {
	if _, err := MatchFixed([]colorspace.Lab{{L: 1}}, nil, nil); !errors.Is(err, ErrInvalidK) {
		t.Errorf("got %v, want ErrInvalidK", err)
	}
}

func TestMatchFixedEmptySamples(t *testing.T) {
	matches, err := MatchFixed(nil, []colorspace.Lab{{L: 0}}, nil)
	if err != nil {
		t.Fatalf("MatchFixed failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestMapToCentroids(t *testing.T) {
	centroids := []colorspace.Lab{{L: 1}, {L: 2}, {L: 3}}
	assignment := []int{2, 0, 1, 0}

	out := MapToCentroids(centroids, assignment)
	want := []colorspace.Lab{{L: 3}, {L: 1}, {L: 2}, {L: 1}}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d]: got %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestMapToCentroidsClampsOutOfRange(t *testing.T) {
	centroids := []colorspace.Lab{{L: 1}, {L: 2}}
	out := MapToCentroids(centroids, []int{5, -1})
	for i, got := range out {
		if got != centroids[1] {
			t.Errorf("out[%d]: got %+v, want last centroid", i, got)
		}
	}
}
