package noise

import (
	"math/rand"

	"github.com/cwbudde/algo-noise/transform"
)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's random source deterministically. Two
// generators with the same seed produce identical sequences.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source directly. The source is advanced by
// every generation call and must not be shared across goroutines without
// external synchronization.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithTransform sets the transform backend used for spectral shaping.
// The default is [transform.Auto].
func WithTransform(tf transform.Real) Option {
	return func(g *Generator) {
		if tf != nil {
			g.tf = tf
		}
	}
}
