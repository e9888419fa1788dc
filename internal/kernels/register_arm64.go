//go:build arm64

package kernels

import "github.com/cwbudde/algo-fht/internal/cpu"

// NEON layout: 128-bit registers, 4 float32 / 2 float64 lanes, same block
// geometry as SSE2.
func init() {
	Global.Register(OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
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
}
