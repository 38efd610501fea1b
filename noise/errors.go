package noise

import "errors"

var (
	// ErrInvalidColor reports an unrecognized noise color.
	ErrInvalidColor = errors.New("noise: invalid color")
	// ErrInvalidLength reports a sample count below 1.
	ErrInvalidLength = errors.New("noise: sample count must be >= 1")
)
