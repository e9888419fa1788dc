package algofht

import (
	m "github.com/cwbudde/algo-fht/internal/math"
)

// Transform applies the unnormalized Walsh-Hadamard transform to buf in
// place, deriving the size exponent from the slice length. The length must
// be a positive power of two no larger than 1<<MaxLogN.
func Transform[T Float](buf []T) error {
	logN, err := logLen(len(buf))
	if err != nil {
		return err
	}

	switch b := any(buf).(type) {
	case []float32:
		return Float32(b, logN)
	case []float64:
		return Float64(b, logN)
	default:
		// Unreachable: Float admits only the two cases above.
		return ErrInvalidLength
	}
}

// TransformOOP duplicates src into dst and transforms dst in place,
// leaving src untouched. Both slices must have the same power-of-two
// length. The aliasing rules of Float32OOP apply.
func TransformOOP[T Float](src, dst []T) error {
	if len(src) != len(dst) {
		return ErrLengthMismatch
	}

	logN, err := logLen(len(src))
	if err != nil {
		return err
	}

	switch s := any(src).(type) {
	case []float32:
		return Float32OOP(s, any(dst).([]float32), logN)
	case []float64:
		return Float64OOP(s, any(dst).([]float64), logN)
	default:
		// Unreachable: Float admits only the two cases above.
		return ErrInvalidLength
	}
}

// logLen validates n as a transform length and returns its exponent.
func logLen(n int) (int, error) {
	if !m.IsPowerOf2(n) {
		return 0, ErrInvalidLength
	}

	logN := m.Log2(n)
	if logN > MaxLogN {
		return 0, ErrInvalidLength
	}

	return logN, nil
}
