package psd_test

import (
	"fmt"

	"github.com/cwbudde/algo-noise/stats/psd"
)

func ExampleSlopePerOctave() {
	// Power halving per octave is the classic pink-noise density slope.
	p := make([]float64, 129)
	for i := 1; i < len(p); i++ {
		p[i] = 1 / float64(i)
	}

	s, err := psd.SlopePerOctave(p)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f dB/octave\n", s)

	// Output:
	// -3.01 dB/octave
}
