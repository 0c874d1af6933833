//go:build amd64

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Uses golang.org/x/sys/cpu which provides portable CPUID access for the
// dispatch-relevant feature flags, plus klauspost/cpuid for the vendor and
// brand strings surfaced in diagnostics. SSE2 is always true on amd64 as
// it's part of the x86-64 baseline.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE3:      cpu.X86.HasSSE3,
		HasAVX:       cpu.X86.HasAVX,
		HasFMA:       cpu.X86.HasFMA,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		Architecture: runtime.GOARCH,
		Vendor:       cpuid.CPU.VendorString,
		Brand:        cpuid.CPU.BrandName,
	}
}
