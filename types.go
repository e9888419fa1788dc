package algofht

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// Float is a type constraint for the floating-point element types supported
// by the transform. The canonical definition is in internal/fhtypes.
type Float = fhtypes.Float
