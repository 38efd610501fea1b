package noise

import "iter"

// DefaultCycleLength is the conventional block length for cycled noise,
// one second at 44.1 kHz.
const DefaultCycleLength = 44100

// Cycler repeats one generated block of samples indefinitely.
//
// The block is generated exactly once; cycling replays the same samples
// in order rather than drawing fresh noise each period. Sample k of the
// overall stream equals block sample k mod Len. A Cycler does not reset;
// create a new one to start over with fresh noise.
//
// A Cycler is not safe for concurrent use.
type Cycler struct {
	block []float64
	pos   int
}

// Cycle generates one n-sample block of the given color and returns a
// Cycler replaying it.
func (g *Generator) Cycle(n int, color Color) (*Cycler, error) {
	block, err := g.Generate(n, color)
	if err != nil {
		return nil, err
	}
	return &Cycler{block: block}, nil
}

// Cycle generates one n-sample block of the given color from the
// package-level generator and returns a Cycler replaying it.
func Cycle(n int, color Color) (*Cycler, error) {
	return std.Cycle(n, color)
}

// Next returns the next sample, wrapping to the start of the block after
// the final one.
func (c *Cycler) Next() float64 {
	v := c.block[c.pos]
	c.pos++
	if c.pos == len(c.block) {
		c.pos = 0
	}
	return v
}

// Len returns the block length.
func (c *Cycler) Len() int { return len(c.block) }

// Seq returns an infinite iterator over the cycled samples. Iteration
// never ends on its own; callers break out of the range loop themselves.
func (c *Cycler) Seq() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for yield(c.Next()) {
		}
	}
}
