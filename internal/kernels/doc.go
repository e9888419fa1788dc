// Package kernels contains the base-case codelets and combine-step loops of
// the Hadamard transform, together with the registry that matches kernel
// sets to detected CPU features.
//
// A codelet computes the full transform of one small fixed-size block with
// every butterfly stage unrolled onto locals, so the block stays in
// registers between stages. The combine loops implement the add/subtract
// pass across the halves of a larger block, processed in fixed-width chunks
// with a scalar remainder.
//
// Each registered kernel set pairs a base-case cutoff with a combine chunk
// width tuned for one vector register width. Registration happens from init
// functions in the register_*.go files; the generic set is always present,
// SIMD-tuned sets only on their architecture.
package kernels
