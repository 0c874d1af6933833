//go:build !purego && amd64

package avx2

import (
	"testing"

	"github.com/cwbudde/algo-kernels/arch/generic"
)

func TestDeinterleaveRealInt16MatchesGeneric(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 9, 15, 16, 17, 23, 24, 25, 31, 32, 33, 100, 1000, 1023}
	for _, n := range sizes {
		src := make([]complex64, n)
		for i := range src {
			src[i] = complex(float32(i%251)-125.5, float32(i%97))
		}
		got := make([]int16, n)
		want := make([]int16, n)
		DeinterleaveRealInt16(got, src, 260.5)
		generic.DeinterleaveRealInt16(want, src, 260.5)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("n=%d index %d: got %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}

func TestDeinterleaveRealInt16Saturates(t *testing.T) {
	// Values far outside int16, including ones beyond int32 range, must
	// clamp instead of wrapping.
	src := []complex64{
		complex(float32(1.5), 0),
		complex(float32(-1.5), 0),
		complex(float32(4e9), -1),
		complex(float32(-4e9), 1),
		complex(float32(0.25), 0),
		complex(float32(-0.25), 0),
		complex(float32(1), 0),
		complex(float32(-1), 0),
		complex(float32(2), 0),
	}
	dst := make([]int16, len(src))
	DeinterleaveRealInt16(dst, src, 32768)
	want := []int16{32767, -32768, 32767, -32768, 8192, -8192, 32767, -32768, 32767}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}
