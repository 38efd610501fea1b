package transform

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTPACK computes real transforms through gonum's FFTPACK port. It
// accepts any even transform length.
type FFTPACK struct{}

// Forward transforms an n-sample sequence into its n/2+1 bin spectrum.
func (FFTPACK) Forward(seq []float64) ([]complex128, error) {
	n := len(seq)
	if n == 0 {
		return nil, errEmptySequence
	}
	if n%2 != 0 {
		return nil, errOddSequence
	}
	fft := fourier.NewFFT(n)
	return fft.Coefficients(nil, seq), nil
}

// Inverse transforms an m-bin spectrum into its 2*(m-1) sample sequence.
//
// fourier.FFT.Sequence is unnormalized, so the result is rescaled by the
// sequence length here to keep Forward and Inverse a round trip.
func (FFTPACK) Inverse(spectrum []complex128) ([]float64, error) {
	m := len(spectrum)
	if m < 2 {
		return nil, errShortSpectrum
	}
	n := 2 * (m - 1)
	fft := fourier.NewFFT(n)
	seq := fft.Sequence(nil, spectrum)
	scale := 1 / float64(n)
	for i := range seq {
		seq[i] *= scale
	}
	return seq, nil
}
