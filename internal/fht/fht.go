// Package fht implements the recursive butterfly engine of the Hadamard
// transform. The public package validates inputs; nothing here checks
// bounds or exponents again.
package fht

import "github.com/cwbudde/algo-fht/internal/kernels"

// Float32 transforms buf[:1<<logN] in place using the given kernel set.
// logN must be at least 1 and at most 30.
func Float32(buf []float32, logN int, set *kernels.Set32) {
	if logN <= set.BaseLogN {
		kernels.Base32(buf, logN)
		return
	}

	half := 1 << (logN - 1)
	lo, hi := buf[:half], buf[half:half*2]

	Float32(lo, logN-1, set)
	Float32(hi, logN-1, set)
	set.Combine(lo, hi)
}

// Float64 transforms buf[:1<<logN] in place using the given kernel set.
// logN must be at least 1 and at most 30.
func Float64(buf []float64, logN int, set *kernels.Set64) {
	if logN <= set.BaseLogN {
		kernels.Base64(buf, logN)
		return
	}

	half := 1 << (logN - 1)
	lo, hi := buf[:half], buf[half:half*2]

	Float64(lo, logN-1, set)
	Float64(hi, logN-1, set)
	set.Combine(lo, hi)
}
