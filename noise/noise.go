package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-noise/transform"
)

// Color identifies a noise color, the spectral slope of a generated
// sequence.
type Color int

const (
	ColorWhite Color = iota
	ColorPink
	ColorBlue
	ColorBrown
	ColorViolet
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorPink:
		return "pink"
	case ColorBlue:
		return "blue"
	case ColorBrown:
		return "brown"
	case ColorViolet:
		return "violet"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor maps a color name to its Color tag.
func ParseColor(name string) (Color, error) {
	switch name {
	case "white":
		return ColorWhite, nil
	case "pink":
		return ColorPink, nil
	case "blue":
		return ColorBlue, nil
	case "brown":
		return ColorBrown, nil
	case "violet":
		return ColorViolet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, name)
	}
}

// Colors lists all supported colors in declaration order.
func Colors() []Color {
	return []Color{ColorWhite, ColorPink, ColorBlue, ColorBrown, ColorViolet}
}

// Generator produces noise sequences from an injectable random source
// and transform backend.
type Generator struct {
	rng *rand.Rand
	tf  transform.Real
}

// NewGenerator creates a generator. Without [WithSeed] or [WithRand] the
// random source is seeded from the process-wide source, so distinct
// generators produce distinct noise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(rand.Int63())),
		tf:  transform.Auto(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate returns n samples of the given color.
//
// Each call draws fresh randomness and allocates a fresh slice; the
// caller owns the result. Unrecognized colors and n < 1 are errors, never
// silently substituted.
func (g *Generator) Generate(n int, color Color) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	switch color {
	case ColorWhite:
		return g.gaussian(n), nil
	case ColorPink:
		y, err := g.shaped(n, pinkGain)
		if err != nil {
			return nil, err
		}
		return Normalise(y), nil
	case ColorBlue:
		return g.shaped(n, blueGain)
	case ColorBrown:
		return g.shaped(n, brownGain)
	case ColorViolet:
		return g.shaped(n, violetGain)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, int(color))
	}
}

// White returns n samples of white noise: constant power density, flat
// narrowband spectrum.
func (g *Generator) White(n int) ([]float64, error) { return g.Generate(n, ColorWhite) }

// Pink returns n samples of pink noise: equal power in proportionally
// wide bands, power density falling 3 dB per octave. The result is
// normalised to unit peak.
func (g *Generator) Pink(n int) ([]float64, error) { return g.Generate(n, ColorPink) }

// Blue returns n samples of blue noise: power density rising 3 dB per
// octave.
func (g *Generator) Blue(n int) ([]float64, error) { return g.Generate(n, ColorBlue) }

// Brown returns n samples of brown noise: power density falling 6 dB per
// octave.
func (g *Generator) Brown(n int) ([]float64, error) { return g.Generate(n, ColorBrown) }

// Violet returns n samples of violet noise: power density rising 6 dB
// per octave.
func (g *Generator) Violet(n int) ([]float64, error) { return g.Generate(n, ColorViolet) }

// Per-bin spectral gains; i counts up from the DC bin. Pink and brown
// offset the index by one to keep the DC divisor nonzero; blue and
// violet are multiplicative, so their zero gain at DC is harmless.
func pinkGain(i int) float64   { return 1 / math.Sqrt(float64(i)+1) }
func blueGain(i int) float64   { return math.Sqrt(float64(i)) }
func brownGain(i int) float64  { return 1 / (float64(i) + 1) }
func violetGain(i int) float64 { return float64(i) }

// gaussian draws n i.i.d. standard-normal samples.
func (g *Generator) gaussian(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.NormFloat64()
	}
	return out
}

// shaped draws a complex Gaussian half-spectrum, scales each bin by the
// per-bin gain, and inverse-transforms to the time domain.
//
// The spectrum has n/2+1 bins, plus one extra when n is odd; the inverse
// then yields n+1 samples and the final one is dropped. Generating the
// extra bin keeps the formula identical for both parities.
func (g *Generator) shaped(n int, gain func(int) float64) ([]float64, error) {
	uneven := n%2 != 0
	half := n/2 + 1
	if uneven {
		half++
	}

	spectrum := make([]complex128, half)
	for i := range spectrum {
		s := gain(i)
		spectrum[i] = complex(g.rng.NormFloat64()*s, g.rng.NormFloat64()*s)
	}

	y, err := g.tf.Inverse(spectrum)
	if err != nil {
		return nil, err
	}
	if uneven {
		y = y[:n]
	}
	return y, nil
}

// std backs the package-level convenience functions, mirroring a shared
// process-wide random source.
var std = NewGenerator()

// Noise returns n samples of the given color from the package-level
// generator.
func Noise(n int, color Color) ([]float64, error) { return std.Generate(n, color) }

// White returns n samples of white noise from the package-level generator.
func White(n int) ([]float64, error) { return std.White(n) }

// Pink returns n samples of pink noise from the package-level generator.
func Pink(n int) ([]float64, error) { return std.Pink(n) }

// Blue returns n samples of blue noise from the package-level generator.
func Blue(n int) ([]float64, error) { return std.Blue(n) }

// Brown returns n samples of brown noise from the package-level generator.
func Brown(n int) ([]float64, error) { return std.Brown(n) }

// Violet returns n samples of violet noise from the package-level generator.
func Violet(n int) ([]float64, error) { return std.Violet(n) }
