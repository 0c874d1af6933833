package kernels

// The generic variants register on every platform and are the guaranteed
// fallback for dispatch.
import (
	_ "github.com/cwbudde/algo-kernels/arch/generic"
)
