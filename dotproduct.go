package kernels

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-kernels/buffer"
	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/registry"
)

var (
	dotProductOnce     sync.Once
	dotProductEligible []registry.Variant[registry.DotProductFunc]
)

// DotProduct computes the sum over input[i] * taps[i] with complex
// multiplication and no conjugation. If the slices differ in length, the
// shorter length is used. A zero-length input yields 0.
//
// The variant actually run depends on the CPU and on the addresses of
// input and taps. Variants differ in accumulation order, so results agree
// within floating-point tolerance rather than bit-exactly; a length-one
// product is exact in every variant.
func DotProduct(input, taps []complex64) complex64 {
	n := len(input)
	if len(taps) < n {
		n = len(taps)
	}
	if n == 0 {
		return 0
	}

	dotProductOnce.Do(func() {
		dotProductEligible = registry.DotProduct.Eligible(cpu.DetectFeatures())
	})

	align := buffer.AlignmentOf(unsafe.Pointer(&input[0]), unsafe.Pointer(&taps[0]))
	return selectDotProduct(align)(input, taps)
}

// selectDotProduct returns the highest-priority eligible variant whose
// alignment requirement is satisfied. The eligible list is capability
// filtered once per process; alignment varies per call.
func selectDotProduct(align int) registry.DotProductFunc {
	for i := range dotProductEligible {
		if dotProductEligible[i].Align <= align {
			return dotProductEligible[i].Kernel
		}
	}
	panic("kernels: no dot product implementation registered")
}
