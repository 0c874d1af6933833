//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

// init registers the AVX2-shaped deinterleave variants with the kernel registry.
//
// AVX2 adds 256-bit integer operations, letting the deinterleave round and
// pack eight samples per iteration. No dot product variant registers at this
// level; the fused AVX pair already covers its float work.
//
// Priority: 30 aligned, 28 unaligned (highest on amd64)
func init() {
	registry.DeinterleaveRealInt16.Register(registry.Variant[registry.DeinterleaveRealInt16Func]{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Align:     32,
		Priority:  30,
		Kernel:    DeinterleaveRealInt16,
	})
	registry.DeinterleaveRealInt16.Register(registry.Variant[registry.DeinterleaveRealInt16Func]{
		Name:      "avx2_u",
		SIMDLevel: cpu.SIMDAVX2,
		Align:     0,
		Priority:  28,
		Kernel:    DeinterleaveRealInt16,
	})
}
