//go:build arm64 && !purego

package kernels

// Pull in the arm64 variant registrations.
import (
	_ "github.com/cwbudde/algo-kernels/arch/arm64/neon"
)
