//go:build amd64 && !purego

package kernels

// Pull in the amd64 variant registrations.
import (
	_ "github.com/cwbudde/algo-kernels/arch/amd64/avx"
	_ "github.com/cwbudde/algo-kernels/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-kernels/arch/amd64/sse2"
)
