package algofht

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-vecmath"
)

// The transform is linear: T(a*x + b*y) == a*T(x) + b*T(y).
func TestFloat64Linearity(t *testing.T) {
	t.Parallel()

	const (
		a = 2.5
		b = -0.75
	)

	for logN := 1; logN <= 12; logN++ {
		t.Run(fmt.Sprintf("logN=%d", logN), func(t *testing.T) {
			t.Parallel()

			n := 1 << logN
			x := randFloat64(n, int64(logN)*11)
			y := randFloat64(n, int64(logN)*13)

			mixed := make([]float64, n)
			temp := make([]float64, n)
			vecmath.ScaleBlock(mixed, x, a)
			vecmath.ScaleBlock(temp, y, b)
			vecmath.AddBlockInPlace(mixed, temp)

			if err := Float64(mixed, logN); err != nil {
				t.Fatalf("Float64(mixed): %v", err)
			}

			if err := Float64(x, logN); err != nil {
				t.Fatalf("Float64(x): %v", err)
			}
			if err := Float64(y, logN); err != nil {
				t.Fatalf("Float64(y): %v", err)
			}

			want := make([]float64, n)
			vecmath.ScaleBlock(want, x, a)
			vecmath.ScaleBlock(temp, y, b)
			vecmath.AddBlockInPlace(want, temp)

			assertFloat64Close(t, mixed, want, tolFloat64)
		})
	}
}

func TestFloat32Linearity(t *testing.T) {
	t.Parallel()

	const (
		a float32 = 3
		b float32 = -0.5
	)

	for logN := 1; logN <= 12; logN++ {
		t.Run(fmt.Sprintf("logN=%d", logN), func(t *testing.T) {
			t.Parallel()

			n := 1 << logN
			x := randFloat32(n, int64(logN)*17)
			y := randFloat32(n, int64(logN)*19)

			mixed := make([]float32, n)
			for i := range mixed {
				mixed[i] = a*x[i] + b*y[i]
			}

			if err := Float32(mixed, logN); err != nil {
				t.Fatalf("Float32(mixed): %v", err)
			}

			if err := Float32(x, logN); err != nil {
				t.Fatalf("Float32(x): %v", err)
			}
			if err := Float32(y, logN); err != nil {
				t.Fatalf("Float32(y): %v", err)
			}

			want := make([]float32, n)
			for i := range want {
				want[i] = a*x[i] + b*y[i]
			}

			assertFloat32Close(t, mixed, want, tolFloat32)
		})
	}
}

// Applying the unnormalized transform twice scales every element by n.
// Dividing by n afterwards recovers the original signal.
func TestFloat64Involution(t *testing.T) {
	t.Parallel()

	for logN := 1; logN <= 14; logN++ {
		t.Run(fmt.Sprintf("logN=%d", logN), func(t *testing.T) {
			t.Parallel()

			n := 1 << logN
			orig := randFloat64(n, int64(logN)*23)
			buf := make([]float64, n)
			copy(buf, orig)

			if err := Float64(buf, logN); err != nil {
				t.Fatalf("forward: %v", err)
			}
			if err := Float64(buf, logN); err != nil {
				t.Fatalf("second pass: %v", err)
			}

			vecmath.ScaleBlock(buf, buf, 1/float64(n))
			assertFloat64Close(t, buf, orig, tolFloat64)
		})
	}
}

func TestFloat32Involution(t *testing.T) {
	t.Parallel()

	for logN := 1; logN <= 12; logN++ {
		t.Run(fmt.Sprintf("logN=%d", logN), func(t *testing.T) {
			t.Parallel()

			n := 1 << logN
			orig := randFloat32(n, int64(logN)*29)
			buf := make([]float32, n)
			copy(buf, orig)

			if err := Float32(buf, logN); err != nil {
				t.Fatalf("forward: %v", err)
			}
			if err := Float32(buf, logN); err != nil {
				t.Fatalf("second pass: %v", err)
			}

			inv := 1 / float32(n)
			for i := range buf {
				buf[i] *= inv
			}
			assertFloat32Close(t, buf, orig, tolFloat32)
		})
	}
}
