package kernels

import (
	"testing"

	"github.com/cwbudde/algo-kernels/cpu"
	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/registry"
)

var benchSink complex64

func BenchmarkDotProduct(b *testing.B) {
	for _, bs := range benchSizes {
		b.Run(bs.name, func(b *testing.B) {
			input := testutil.DeterministicTone(1000, 48000, 1.0, bs.size)
			taps := testutil.DeterministicNoise(42, 1.0, bs.size)

			b.SetBytes(int64(bs.size) * 16)
			b.ReportAllocs()
			b.ResetTimer()

			var sink complex64
			for i := 0; i < b.N; i++ {
				sink = DotProduct(input, taps)
			}
			benchSink = sink
		})
	}
}

// BenchmarkDotProductVariants times every variant this CPU supports
// directly, bypassing dispatch.
func BenchmarkDotProductVariants(b *testing.B) {
	features := cpu.DetectFeatures()
	input := testutil.DeterministicTone(1000, 48000, 1.0, 4096)
	taps := testutil.DeterministicNoise(42, 1.0, 4096)

	for _, v := range registry.DotProduct.Variants() {
		if !cpu.Supports(features, v.SIMDLevel) {
			continue
		}
		kern := v.Kernel
		b.Run(v.Name, func(b *testing.B) {
			b.SetBytes(4096 * 16)
			b.ReportAllocs()
			b.ResetTimer()

			var sink complex64
			for i := 0; i < b.N; i++ {
				sink = kern(input, taps)
			}
			benchSink = sink
		})
	}
}
