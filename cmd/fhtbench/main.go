// Command fhtbench times every registered Hadamard kernel set on the
// current machine and prints a per-size comparison table.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/kernels"
	m "github.com/cwbudde/algo-fht/internal/math"
)

type benchResult struct {
	name    string
	nsPerOp float64
}

func main() {
	var (
		sizeList  = flag.String("sizes", "1024,4096,16384,65536", "comma-separated transform sizes (powers of two)")
		iters     = flag.Int("iters", 200, "benchmark iterations")
		warmup    = flag.Int("warmup", 10, "warmup iterations")
		precision = flag.String("precision", "both", "element type: f32, f64, both")
		seed      = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s iters=%d warmup=%d\n", features.Architecture, *iters, *warmup)
	fmt.Printf("%8s  %5s  %10s  %12s\n", "size", "type", "kernel", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		if !m.IsPowerOf2(n) {
			fmt.Printf("%8d  skipped: not a power of two\n", n)
			continue
		}
		logN := m.Log2(n)

		if *precision != "f64" {
			report(n, "f32", benchmarkFloat32(rnd, logN, *iters, *warmup, features))
		}
		if *precision != "f32" {
			report(n, "f64", benchmarkFloat64(rnd, logN, *iters, *warmup, features))
		}
	}
}

func report(n int, precision string, results []benchResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].nsPerOp < results[j].nsPerOp
	})
	for _, res := range results {
		fmt.Printf("%8d  %5s  %10s  %12.1f\n", n, precision, res.name, res.nsPerOp)
	}
}

func benchmarkFloat32(rnd *rand.Rand, logN, iters, warmup int, features cpu.Features) []benchResult {
	n := 1 << logN
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(rnd.Float64()*2 - 1)
	}
	buf := make([]float32, n)

	var results []benchResult

	for _, entry := range kernels.Global.ListEntries() {
		if !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}

		for range warmup {
			copy(buf, src)
			fht.Float32(buf, logN, &entry.F32)
		}

		runtime.GC()

		start := time.Now()
		for range iters {
			fht.Float32(buf, logN, &entry.F32)
		}
		elapsed := time.Since(start)

		results = append(results, benchResult{
			name:    entry.Name,
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func benchmarkFloat64(rnd *rand.Rand, logN, iters, warmup int, features cpu.Features) []benchResult {
	n := 1 << logN
	src := make([]float64, n)
	for i := range src {
		src[i] = rnd.Float64()*2 - 1
	}
	buf := make([]float64, n)

	var results []benchResult

	for _, entry := range kernels.Global.ListEntries() {
		if !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}

		for range warmup {
			copy(buf, src)
			fht.Float64(buf, logN, &entry.F64)
		}

		runtime.GC()

		start := time.Now()
		for range iters {
			fht.Float64(buf, logN, &entry.F64)
		}
		elapsed := time.Since(start)

		results = append(results, benchResult{
			name:    entry.Name,
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
