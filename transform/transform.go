package transform

import "errors"

// Real converts between a real-valued sequence and its one-sided complex
// spectrum.
//
// Forward of an n-sample sequence (n even) yields n/2+1 bins, from DC up
// to and including Nyquist. Inverse of an m-bin spectrum yields 2*(m-1)
// samples and is scaled by the sequence length, so Inverse(Forward(x))
// reproduces x to floating-point tolerance.
type Real interface {
	Forward(seq []float64) ([]complex128, error)
	Inverse(spectrum []complex128) ([]float64, error)
}

var (
	errEmptySequence = errors.New("transform: sequence must not be empty")
	errOddSequence   = errors.New("transform: sequence length must be even")
	errShortSpectrum = errors.New("transform: spectrum must have at least 2 bins")
)

// Auto returns a backend that selects the fastest conforming
// implementation per transform length: plan-based FFTs for power-of-two
// lengths, the FFTPACK port for everything else.
func Auto() Real { return auto{} }

type auto struct{}

func (auto) Forward(seq []float64) ([]complex128, error) {
	if isPowerOfTwo(len(seq)) {
		return Plan{}.Forward(seq)
	}
	return FFTPACK{}.Forward(seq)
}

func (auto) Inverse(spectrum []complex128) ([]float64, error) {
	if isPowerOfTwo(2 * (len(spectrum) - 1)) {
		return Plan{}.Inverse(spectrum)
	}
	return FFTPACK{}.Inverse(spectrum)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
