package kernels

// CombineFunc32 applies the butterfly across two equal-length halves of a
// float32 block: lo[i], hi[i] = lo[i]+hi[i], lo[i]-hi[i].
type CombineFunc32 func(lo, hi []float32)

// CombineFunc64 is the float64 counterpart of CombineFunc32.
type CombineFunc64 func(lo, hi []float64)

// Set32 describes one float32 kernel set: the recursion cutoff exponent and
// the combine routine used above it. Blocks of 1<<BaseLogN elements or
// fewer are handled by the unrolled codelets via Base32.
type Set32 struct {
	BaseLogN int
	Combine  CombineFunc32
}

// Set64 is the float64 counterpart of Set32.
type Set64 struct {
	BaseLogN int
	Combine  CombineFunc64
}
