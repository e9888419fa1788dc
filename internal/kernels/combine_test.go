package kernels

import (
	"fmt"
	"testing"
)

// Every combine variant computes the same elementwise sums and differences
// as the scalar loop, so comparisons are exact. Odd lengths exercise the
// remainder paths.

var combineLengths = []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 100}

func TestCombine32VariantsMatchScalar(t *testing.T) {
	t.Parallel()

	variants := []struct {
		name string
		fn   CombineFunc32
	}{
		{"4x", combine4x32},
		{"8x", combine8x32},
	}

	for _, v := range variants {
		for _, n := range combineLengths {
			t.Run(fmt.Sprintf("%s/n=%d", v.name, n), func(t *testing.T) {
				t.Parallel()

				lo := randFloat32(n, int64(n))
				hi := randFloat32(n, int64(n)+1000)

				wantLo := make([]float32, n)
				wantHi := make([]float32, n)
				copy(wantLo, lo)
				copy(wantHi, hi)
				combineScalar32(wantLo, wantHi)

				v.fn(lo, hi)
				assertFloat32SliceEqual(t, lo, wantLo)
				assertFloat32SliceEqual(t, hi, wantHi)
			})
		}
	}
}

func TestCombine64VariantsMatchScalar(t *testing.T) {
	t.Parallel()

	variants := []struct {
		name string
		fn   CombineFunc64
	}{
		{"2x", combine2x64},
		{"4x", combine4x64},
	}

	for _, v := range variants {
		for _, n := range combineLengths {
			t.Run(fmt.Sprintf("%s/n=%d", v.name, n), func(t *testing.T) {
				t.Parallel()

				lo := randFloat64(n, int64(n))
				hi := randFloat64(n, int64(n)+1000)

				wantLo := make([]float64, n)
				wantHi := make([]float64, n)
				copy(wantLo, lo)
				copy(wantHi, hi)
				combineScalar64(wantLo, wantHi)

				v.fn(lo, hi)
				assertFloat64SliceEqual(t, lo, wantLo)
				assertFloat64SliceEqual(t, hi, wantHi)
			})
		}
	}
}

func TestCombineScalar32(t *testing.T) {
	t.Parallel()

	lo := []float32{1, 2}
	hi := []float32{3, 5}
	combineScalar32(lo, hi)

	assertFloat32SliceEqual(t, lo, []float32{4, 7})
	assertFloat32SliceEqual(t, hi, []float32{-2, -3})
}
