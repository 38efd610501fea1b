// Package psd estimates power spectral densities and their slopes.
//
// Its main use is validating noise colors: the slope of a periodogram in
// dB per octave identifies the spectral shape of a generated sequence.
package psd
