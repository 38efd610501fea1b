package psd

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-noise/internal/testutil"
)

func TestPeriodogramSinePeak(t *testing.T) {
	const n = 64
	const bin = 8
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * bin * float64(i) / n)
	}

	p, err := Periodogram(x)
	if err != nil {
		t.Fatalf("Periodogram error = %v", err)
	}
	if len(p) != n/2+1 {
		t.Fatalf("len = %d, want %d", len(p), n/2+1)
	}

	peak := 0
	for i := range p {
		if p[i] > p[peak] {
			peak = i
		}
	}
	if peak != bin {
		t.Fatalf("peak bin = %d, want %d", peak, bin)
	}
	// A unit sine at an exact bin concentrates |X|^2 = (n/2)^2 there.
	testutil.RequireNear(t, p[bin], float64(n)/4, 1e-9)
}

func TestPeriodogramArgumentErrors(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		if _, err := Periodogram(make([]float64, n)); err == nil {
			t.Fatalf("Periodogram(len %d): expected error", n)
		}
	}
}

func TestSlopePerOctaveExactPowerLaw(t *testing.T) {
	// p[i] = 1/i gives exactly -10*log10(2) dB per octave.
	p := make([]float64, 513)
	for i := 1; i < len(p); i++ {
		p[i] = 1 / float64(i)
	}
	s, err := SlopePerOctave(p)
	if err != nil {
		t.Fatalf("SlopePerOctave error = %v", err)
	}
	testutil.RequireNear(t, s, -10*math.Log10(2), 1e-9)
}

func TestSlopePerOctaveFlat(t *testing.T) {
	p := make([]float64, 257)
	for i := range p {
		p[i] = 2.5
	}
	s, err := SlopePerOctave(p)
	if err != nil {
		t.Fatalf("SlopePerOctave error = %v", err)
	}
	testutil.RequireNear(t, s, 0, 1e-9)
}

func TestSlopePerOctaveSkipsZeroBins(t *testing.T) {
	p := []float64{0, 0, 4, 2, 1}
	s, err := SlopePerOctave(p)
	if err != nil {
		t.Fatalf("SlopePerOctave error = %v", err)
	}
	if s >= 0 {
		t.Fatalf("slope = %v, want negative", s)
	}
}

func TestSlopePerOctaveErrors(t *testing.T) {
	if _, err := SlopePerOctave([]float64{1, 2}); err == nil {
		t.Fatal("expected error for too few bins")
	}
	if _, err := SlopePerOctave([]float64{1, 0, 0, 0}); err == nil {
		t.Fatal("expected error when nearly all bins are zero")
	}
}
