//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

// init registers the NEON-shaped dot product variants with the kernel registry.
//
// NEON loads carry no alignment requirement, so every entry registers with
// Align 0. The three variants differ only in accumulation strategy: planar
// multiply and add, fused multiply-accumulate pairs, and an eight-sample
// unroll with independent accumulation chains.
//
// Priority: 15 neon, 18 neon_fma, 20 neon_unroll
func init() {
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Align:     0,
		Priority:  15,
		Kernel:    DotProduct,
	})
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "neon_fma",
		SIMDLevel: cpu.SIMDNEON,
		Align:     0,
		Priority:  18,
		Kernel:    DotProductFMA,
	})
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "neon_unroll",
		SIMDLevel: cpu.SIMDNEON,
		Align:     0,
		Priority:  20,
		Kernel:    DotProductUnroll,
	})
}
