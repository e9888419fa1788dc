// Package reference holds a naive recursive Hadamard transform that
// directly encodes the combine step with no unrolling. It exists for
// correctness comparison in tests and is not wired into the library.
package reference

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// Transform applies the unnormalized Walsh-Hadamard transform in place.
// len(buf) must be a power of two; a single element is returned unchanged.
func Transform[T fhtypes.Float](buf []T) {
	n := len(buf)
	if n < 2 {
		return
	}

	half := n / 2
	lo, hi := buf[:half], buf[half:]

	Transform(lo)
	Transform(hi)

	for i := range half {
		u, v := lo[i], hi[i]
		lo[i] = u + v
		hi[i] = u - v
	}
}
