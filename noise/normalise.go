package noise

import (
	"github.com/cwbudde/algo-vecmath"
)

// Normalise rescales x to unit peak amplitude and returns a new slice of
// the same length and order. An all-zero input yields zeros.
func Normalise(x []float64) []float64 {
	out := make([]float64, len(x))
	peak := vecmath.MaxAbs(x)
	if peak == 0 {
		return out
	}
	vecmath.ScaleBlock(out, x, 1/peak)
	return out
}
