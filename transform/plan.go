package transform

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// Plan computes real transforms through algo-fft complex plans, packing
// the one-sided spectrum into its full Hermitian form. Transform lengths
// must be powers of two.
type Plan struct{}

// Forward transforms an n-sample sequence into its n/2+1 bin spectrum.
func (Plan) Forward(seq []float64) ([]complex128, error) {
	n := len(seq)
	if n == 0 {
		return nil, errEmptySequence
	}
	if n%2 != 0 {
		return nil, errOddSequence
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("transform: plan length must be a power of two: %d", n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range seq {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}
	return out[:n/2+1], nil
}

// Inverse transforms an m-bin spectrum into its 2*(m-1) sample sequence.
//
// The imaginary parts of the DC and Nyquist bins are discarded, matching
// the one-sided real-transform convention, so the reconstructed sequence
// is exactly real.
func (Plan) Inverse(spectrum []complex128) ([]float64, error) {
	m := len(spectrum)
	if m < 2 {
		return nil, errShortSpectrum
	}
	n := 2 * (m - 1)
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("transform: plan length must be a power of two: %d", n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	// Mirror the interior bins conjugated into the upper half.
	full := make([]complex128, n)
	full[0] = complex(real(spectrum[0]), 0)
	full[m-1] = complex(real(spectrum[m-1]), 0)
	for i := 1; i < m-1; i++ {
		full[i] = spectrum[i]
		full[n-i] = complex(real(spectrum[i]), -imag(spectrum[i]))
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, full); err != nil {
		return nil, fmt.Errorf("transform: inverse FFT failed: %w", err)
	}

	seq := make([]float64, n)
	for i := range seq {
		seq[i] = real(out[i])
	}
	return seq, nil
}
