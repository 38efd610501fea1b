package psd

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-noise/transform"
)

var errTooFewBins = errors.New("psd: too few usable bins for a slope fit")

// Periodogram returns the one-sided power spectral density estimate
// |X[k]|^2 / n of an even-length sequence, from bin 0 (DC) through
// Nyquist.
func Periodogram(x []float64) ([]float64, error) {
	n := len(x)
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("psd: input length must be even and >= 2: %d", n)
	}

	spectrum, err := transform.Auto().Forward(x)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(spectrum))
	im := make([]float64, len(spectrum))
	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(spectrum))
	vecmath.Power(out, re, im)
	vecmath.ScaleBlock(out, out, 1/float64(n))
	return out, nil
}

// SlopePerOctave fits power in dB against the base-2 logarithm of the
// bin index over bins 1..len(p)-1 and returns the slope in dB per
// octave. Zero-power bins are skipped, so colors with a null at DC or
// elsewhere do not break the fit.
func SlopePerOctave(p []float64) (float64, error) {
	if len(p) < 3 {
		return 0, fmt.Errorf("psd: need at least 3 bins to fit a slope: %d", len(p))
	}

	xs := make([]float64, 0, len(p)-1)
	ys := make([]float64, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		if p[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log2(float64(i)))
		ys = append(ys, 10*math.Log10(p[i]))
	}
	if len(xs) < 2 {
		return 0, errTooFewBins
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope, nil
}
