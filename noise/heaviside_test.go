package noise

import (
	"testing"

	"github.com/cwbudde/algo-noise/internal/testutil"
)

func TestHeaviside(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{-1, 0},
		{-1e-12, 0},
		{0, 0.5},
		{1e-12, 1},
		{1, 1},
	}
	for _, tc := range cases {
		if got := Heaviside(tc.x); got != tc.want {
			t.Fatalf("Heaviside(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestHeavisideSlice(t *testing.T) {
	got := HeavisideSlice([]float64{-3, 0, 2, -0.5, 7})
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0, 1}, 0)
}
