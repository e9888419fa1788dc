package kernels

import "github.com/cwbudde/algo-fht/internal/cpu"

// The generic set is registered on every architecture and is the only set
// that matches when ForceGeneric is on. Cutoffs follow the 128-bit layout
// so behavior stays aligned with the SIMD sets.
func init() {
	Global.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		F32: Set32{
			BaseLogN: 3,
			Combine:  combineScalar32,
		},
		F64: Set64{
			BaseLogN: 2,
			Combine:  combineScalar64,
		},
	})
}
