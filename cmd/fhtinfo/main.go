// Command fhtinfo prints the detected CPU features and the kernel sets
// registered for this build, marking which set the library would pick.
package main

import (
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/kernels"
)

func main() {
	features := cpu.DetectFeatures()

	fmt.Printf("GOARCH:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("SSE2:     %v\n", features.HasSSE2)
	fmt.Printf("AVX2:     %v\n", features.HasAVX2)
	fmt.Printf("AVX-512:  %v\n", features.HasAVX512)
	fmt.Printf("NEON:     %v\n", features.HasNEON)
	fmt.Println()

	selected := fht.Select(features)

	fmt.Printf("%-10s  %-8s  %8s  %8s  %8s  %s\n",
		"kernel", "level", "priority", "base f32", "base f64", "status")

	for _, entry := range kernels.Global.ListEntries() {
		status := "unsupported"
		if cpu.Supports(features, entry.SIMDLevel) {
			status = "available"
		}
		if entry.Name == selected.Name {
			status = "selected"
		}

		fmt.Printf("%-10s  %-8s  %8d  %8d  %8d  %s\n",
			entry.Name, entry.SIMDLevel, entry.Priority,
			entry.F32.BaseLogN, entry.F64.BaseLogN, status)
	}
}
