package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesConsistent(t *testing.T) {
	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Fatalf("detection not stable: %+v vs %+v", a, b)
	}
}

func TestDetectFeaturesArchitecture(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestSetForcedFeaturesRoundTrip(t *testing.T) {
	defer ResetDetection()

	forced := Features{
		HasSSE2:      true,
		HasAVX:       true,
		HasFMA:       true,
		Architecture: "amd64",
		Vendor:       "forced-vendor",
	}
	SetForcedFeatures(forced)

	got := DetectFeatures()
	if got != forced {
		t.Fatalf("DetectFeatures() = %+v, want forced %+v", got, forced)
	}

	ResetDetection()

	if after := DetectFeatures(); after.Vendor == "forced-vendor" {
		t.Fatal("forced features survived ResetDetection")
	}
}

func TestSupportHelpers(t *testing.T) {
	f := DetectFeatures()
	if HasSSE2Support() != f.HasSSE2 {
		t.Error("HasSSE2Support disagrees with DetectFeatures")
	}
	if HasAVX2Support() != f.HasAVX2 {
		t.Error("HasAVX2Support disagrees with DetectFeatures")
	}
	if HasNEONSupport() != f.HasNEON {
		t.Error("HasNEONSupport disagrees with DetectFeatures")
	}
}

func TestForceGenericNarrowsSupports(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX: true, HasFMA: true, HasAVX2: true, HasNEON: true, ForceGeneric: true}
	levels := []SIMDLevel{SIMDSSE2, SIMDAVX, SIMDAVXFMA, SIMDAVX2, SIMDAVX512, SIMDNEON, SIMDSVELTE}
	for _, lv := range levels {
		if Supports(f, lv) {
			t.Errorf("ForceGeneric must block %s", lv)
		}
	}
	if !Supports(f, SIMDNone) {
		t.Error("ForceGeneric must keep the generic level")
	}
}
