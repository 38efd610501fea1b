// Package noise generates sequences of colored noise.
//
// Five spectral shapes are supported, each named for how its power and
// power density change per octave:
//
//	Color   Power  Power density
//	white   +3 dB    0 dB
//	pink     0 dB   -3 dB
//	blue    +6 dB   +3 dB
//	brown   -3 dB   -6 dB
//	violet  +9 dB   +6 dB
//
// Colored noise is produced by drawing a complex Gaussian half-spectrum,
// shaping it with a per-bin power law, and inverse-transforming to the
// time domain. White noise is drawn directly as i.i.d. Gaussian samples.
//
// A [Generator] carries its own random source and transform backend so
// output can be made reproducible; the package-level functions share one
// process-wide generator.
package noise
