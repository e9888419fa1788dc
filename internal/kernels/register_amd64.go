//go:build amd64

package kernels

import "github.com/cwbudde/algo-fht/internal/cpu"

// SSE2 layout: 128-bit registers, 4 float32 / 2 float64 lanes. Size-8
// single-precision blocks fit in two registers, size-4 double blocks
// likewise.
//
// AVX2 layout: 256-bit registers, 8 float32 / 4 float64 lanes. The wider
// unit makes it profitable to fuse one more stage before falling back to
// memory traffic, so the base cutoffs grow by one.
func init() {
	Global.Register(OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		F32: Set32{
			BaseLogN: 3,
			Combine:  combine4x32,
		},
		F64: Set64{
			BaseLogN: 2,
			Combine:  combine2x64,
		},
	})

	Global.Register(OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		F32: Set32{
			BaseLogN: 4,
			Combine:  combine8x32,
		},
		F64: Set64{
			BaseLogN: 3,
			Combine:  combine4x64,
		},
	})
}
