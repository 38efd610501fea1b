// Package transform provides one-sided real discrete Fourier transforms
// behind a pluggable backend interface.
//
// The package does not implement an FFT itself. It adapts external FFT
// backends to a single real-transform convention so callers can swap
// implementations, and [Auto] selects the fastest conforming backend for
// each transform length.
package transform
