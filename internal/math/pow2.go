// Package math provides the small power-of-two helpers shared by the
// public API and the command-line tools.
package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n, assuming n is a power of 2.
func Log2(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}
