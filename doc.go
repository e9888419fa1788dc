// Package algofht computes the Fast Walsh-Hadamard Transform over
// power-of-two-length float32 and float64 buffers.
//
// The transform is unnormalized: applying it twice to a buffer of length n
// scales the original contents by n. Callers that need an orthonormal
// convention divide the result by n or sqrt(n) themselves.
//
// All operations are stateless and allocation-free. A call owns only the
// caller-supplied buffer for its duration, so concurrent calls on disjoint
// buffers are safe without synchronization. Kernel selection happens at
// runtime from detected CPU features, picking larger unrolled base cases and
// wider combine loops on targets with wider vector units.
//
// Two API styles are provided. The exponent-based entry points mirror the
// classic C interface and take logN with n = 1<<logN:
//
//	err := algofht.Float64(buf, 10) // buf has 1024 elements
//
// The length-derived entry points infer the exponent from the slice length,
// which must be a positive power of two:
//
//	err := algofht.Transform(buf)
package algofht
