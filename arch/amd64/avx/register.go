//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

// init registers the AVX-shaped dot product variants with the kernel registry.
//
// AVX provides 256-bit floating-point operations. The fused pair forms each
// partial product with a single rounding and registers at a level requiring
// both AVX and FMA3. Aligned entries expect 32-byte buffers; the unaligned
// twins accept any address at lower priority.
//
// Priority: 20/18 plain, 25/23 fused (above SSE2, below AVX2)
func init() {
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Align:     32,
		Priority:  20,
		Kernel:    DotProduct,
	})
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "avx_u",
		SIMDLevel: cpu.SIMDAVX,
		Align:     0,
		Priority:  18,
		Kernel:    DotProduct,
	})

	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "avx_fma",
		SIMDLevel: cpu.SIMDAVXFMA,
		Align:     32,
		Priority:  25,
		Kernel:    DotProductFMA,
	})
	registry.DotProduct.Register(registry.Variant[registry.DotProductFunc]{
		Name:      "avx_fma_u",
		SIMDLevel: cpu.SIMDAVXFMA,
		Align:     0,
		Priority:  23,
		Kernel:    DotProductFMA,
	})
}
