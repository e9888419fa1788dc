// Package fastcopy duplicates buffers for the out-of-place transform.
//
// The contract mirrors the classic fast_copy collaborator: lengths are
// expected to be powers of two, but any length and alignment is tolerated.
// Very large copies go straight to the built-in copy, whose memmove is
// hard to beat once the data leaves cache; eligible smaller lengths run
// through fixed-width chunk loops in widest-first preference order, with
// an element-wise remainder.
package fastcopy

import (
	"unsafe"

	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// memcpyThreshold is the byte length at or above which the built-in copy
// is used unconditionally.
const memcpyThreshold = 1 << 20

// Copy duplicates src into dst and returns the number of elements copied,
// min(len(dst), len(src)).
func Copy[T fhtypes.Float](dst, src []T) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}

	var zero T
	if n*int(unsafe.Sizeof(zero)) >= memcpyThreshold || n < 4 {
		return copy(dst, src[:n])
	}

	i := 0

	for ; i+16 <= n; i += 16 {
		d := dst[i : i+16 : i+16]
		s := src[i : i+16 : i+16]

		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		d[4], d[5], d[6], d[7] = s[4], s[5], s[6], s[7]
		d[8], d[9], d[10], d[11] = s[8], s[9], s[10], s[11]
		d[12], d[13], d[14], d[15] = s[12], s[13], s[14], s[15]
	}

	for ; i+8 <= n; i += 8 {
		d := dst[i : i+8 : i+8]
		s := src[i : i+8 : i+8]

		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		d[4], d[5], d[6], d[7] = s[4], s[5], s[6], s[7]
	}

	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		s := src[i : i+4 : i+4]

		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
	}

	for ; i < n; i++ {
		dst[i] = src[i]
	}

	return n
}
