package generic

import (
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

// init registers the generic (pure Go) variants with the kernel registry.
//
// Generic variants serve as the baseline fallback when no SIMD optimizations
// are available or when ForceGeneric is enabled for testing. They carry no
// alignment requirement and must be correct and complete on their own for
// every valid input: they are the reference oracle for all other variants.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are eligible)
func init() {
	registry.DeinterleaveRealInt16.Register(registry.Variant[registry.DeinterleaveRealInt16Func]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Kernel:    DeinterleaveRealInt16,
	})

	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Kernel:    DotProduct,
	})
}
