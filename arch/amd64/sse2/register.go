//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

// init registers the SSE2-shaped variants with the kernel registry.
//
// SSE2 provides 128-bit SIMD operations and is part of the x86-64 baseline,
// so these variants are eligible on all amd64 CPUs. Each kernel registers
// twice: an aligned entry used when every buffer is 16-byte aligned, and an
// any-alignment twin at lower priority.
//
// Priority: 10 aligned, 8 unaligned (preferred over generic, below the
// 256-bit variants)
func init() {
	registry.DeinterleaveRealInt16.Register(registry.Variant[registry.DeinterleaveRealInt16Func]{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Align:     16,
		Priority:  10,
		Kernel:    DeinterleaveRealInt16,
	})
	registry.DeinterleaveRealInt16.Register(registry.Variant[registry.DeinterleaveRealInt16Func]{
		Name:      "sse2_u",
		SIMDLevel: cpu.SIMDSSE2,
		Align:     0,
		Priority:  8,
		Kernel:    DeinterleaveRealInt16,
	})

	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Align:     16,
		Priority:  10,
		Kernel:    DotProduct,
	})
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "sse2_u",
		SIMDLevel: cpu.SIMDSSE2,
		Align:     0,
		Priority:  8,
		Kernel:    DotProduct,
	})
}
