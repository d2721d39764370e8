package codec

import "errors"

var (
	// ErrValueOutOfRange is returned when a value lies outside the
	// representable domain of the scheme, e.g. 0 passed to Elias gamma or
	// delta, or MaxUint64 passed to Fibonacci.
	ErrValueOutOfRange = errors.New("value out of range for scheme")

	// ErrOutOfBounds is returned when a codeword would extend past the end
	// of the buffer: an encode whose computed size does not fit, or a
	// decode that runs off the buffer before finding a terminator.
	ErrOutOfBounds = errors.New("codeword exceeds buffer bounds")
)
