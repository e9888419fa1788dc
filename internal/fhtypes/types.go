// Package fhtypes holds shared type constraints for the FHT packages.
//
// It exists so that the public package and the internal engine/kernel
// packages can agree on constraints without import cycles.
package fhtypes

// Float is the type constraint for buffer element types supported by the
// transform: single or double precision, one element type per call.
type Float interface {
	float32 | float64
}
