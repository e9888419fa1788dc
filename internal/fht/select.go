package fht

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/kernels"
)

// Select returns the kernel set entry for the given CPU features. The
// generic set registers unconditionally, so the registry can only come up
// empty if it was tampered with.
func Select(features cpu.Features) *kernels.OpEntry {
	entry := kernels.Global.Lookup(features)
	if entry == nil {
		panic("fht: no kernel set registered (missing generic fallback?)")
	}

	return entry
}
