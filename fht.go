package algofht

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fastcopy"
	"github.com/cwbudde/algo-fht/internal/fht"
)

// MaxLogN is the largest accepted size exponent. It bounds the recursion
// depth, so stack usage stays small and predictable.
const MaxLogN = 30

// Float32 applies the unnormalized Walsh-Hadamard transform to
// buf[:1<<logN] in place.
//
// logN outside [0, MaxLogN] returns ErrInvalidLogN without touching the
// buffer. logN == 0 is a no-op: the transform of a single scalar is itself.
func Float32(buf []float32, logN int) error {
	if logN < 0 || logN > MaxLogN {
		return ErrInvalidLogN
	}
	if logN == 0 {
		return nil
	}
	if buf == nil {
		return ErrNilSlice
	}
	if len(buf) < 1<<logN {
		return ErrLengthMismatch
	}

	entry := fht.Select(cpu.DetectFeatures())
	fht.Float32(buf, logN, &entry.F32)

	return nil
}

// Float64 applies the unnormalized Walsh-Hadamard transform to
// buf[:1<<logN] in place. See Float32 for the validation rules.
func Float64(buf []float64, logN int) error {
	if logN < 0 || logN > MaxLogN {
		return ErrInvalidLogN
	}
	if logN == 0 {
		return nil
	}
	if buf == nil {
		return ErrNilSlice
	}
	if len(buf) < 1<<logN {
		return ErrLengthMismatch
	}

	entry := fht.Select(cpu.DetectFeatures())
	fht.Float64(buf, logN, &entry.F64)

	return nil
}

// Float32OOP duplicates src[:1<<logN] into dst and transforms dst in
// place, leaving src untouched. At logN == 0 the transform itself is a
// no-op but the single element is still copied.
//
// If src and dst share the same first element the copy is skipped and the
// call degrades to the in-place form. Buffers that partially overlap
// without being identical produce unspecified results; callers must
// guarantee full aliasing or none.
func Float32OOP(src, dst []float32, logN int) error {
	if logN < 0 || logN > MaxLogN {
		return ErrInvalidLogN
	}
	if src == nil || dst == nil {
		return ErrNilSlice
	}

	n := 1 << logN
	if len(src) < n || len(dst) < n {
		return ErrLengthMismatch
	}

	if &src[0] != &dst[0] {
		fastcopy.Copy(dst[:n], src[:n])
	}

	if logN == 0 {
		return nil
	}

	entry := fht.Select(cpu.DetectFeatures())
	fht.Float32(dst, logN, &entry.F32)

	return nil
}

// Float64OOP duplicates src[:1<<logN] into dst and transforms dst in
// place, leaving src untouched. See Float32OOP for the aliasing and
// logN == 0 rules.
func Float64OOP(src, dst []float64, logN int) error {
	if logN < 0 || logN > MaxLogN {
		return ErrInvalidLogN
	}
	if src == nil || dst == nil {
		return ErrNilSlice
	}

	n := 1 << logN
	if len(src) < n || len(dst) < n {
		return ErrLengthMismatch
	}

	if &src[0] != &dst[0] {
		fastcopy.Copy(dst[:n], src[:n])
	}

	if logN == 0 {
		return nil
	}

	entry := fht.Select(cpu.DetectFeatures())
	fht.Float64(dst, logN, &entry.F64)

	return nil
}
