package algofht

import "errors"

// Sentinel errors returned by FHT operations.
var (
	// ErrInvalidLogN is returned when the size exponent is outside [0, 30].
	// The buffer is not touched when this error is returned.
	ErrInvalidLogN = errors.New("algofht: size exponent out of range [0, 30]")

	// ErrInvalidLength is returned by the length-derived API when the buffer
	// length is not a positive power of two.
	ErrInvalidLength = errors.New("algofht: length is not a power of two")

	// ErrNilSlice is returned when a nil slice is passed to a transform
	// that would have to touch it.
	ErrNilSlice = errors.New("algofht: nil slice")

	// ErrLengthMismatch is returned when a slice is shorter than the
	// 2^logN elements the size exponent promises, or when the input and
	// output of an out-of-place transform differ in length.
	ErrLengthMismatch = errors.New("algofht: slice length mismatch")
)
