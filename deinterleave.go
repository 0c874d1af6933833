package kernels

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-kernels/buffer"
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

var (
	deinterleaveOnce     sync.Once
	deinterleaveEligible []registry.Variant[registry.DeinterleaveRealInt16Func]
)

// DeinterleaveRealInt16 writes round(scale * real(src[i])) to dst[i] for
// every sample. Rounding is to nearest with ties to even; results outside
// the int16 range saturate to its bounds. The imaginary parts are ignored.
// Slices must have equal length. Panics if lengths differ.
//
// The variant actually run depends on the CPU and on the addresses of dst
// and src, but every variant produces identical output.
func DeinterleaveRealInt16(dst []int16, src []complex64, scale float32) {
	if len(dst) != len(src) {
		panic("kernels: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}

	deinterleaveOnce.Do(func() {
		deinterleaveEligible = registry.DeinterleaveRealInt16.Eligible(cpu.DetectFeatures())
	})

	align := buffer.AlignmentOf(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]))
	selectDeinterleave(align)(dst, src, scale)
}

// selectDeinterleave returns the highest-priority eligible variant whose
// alignment requirement is satisfied. The eligible list is capability
// filtered once per process; alignment varies per call.
func selectDeinterleave(align int) registry.DeinterleaveRealInt16Func {
	for i := range deinterleaveEligible {
		if deinterleaveEligible[i].Align <= align {
			return deinterleaveEligible[i].Kernel
		}
	}
	panic("kernels: no deinterleave implementation registered")
}
