package kernels

import (
	"math/rand"
	"testing"
)

// Shared helpers for the kernel tests.

func randFloat32(n int, seed int64) []float32 {
	rnd := rand.New(rand.NewSource(seed))
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(rnd.Float64()*2 - 1)
	}
	return buf
}

func randFloat64(n int, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rnd.Float64()*2 - 1
	}
	return buf
}

func assertFloat32SliceEqual(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func assertFloat64SliceEqual(t *testing.T, got, want []float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}
