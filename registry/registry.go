// Package registry provides the variant registry for kernel operations.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, AVX, AVX2, NEON, etc.) of one logical operation to coexist.
// The best variant for the current CPU and buffer alignment is selected
// automatically at runtime.
//
// Each logical operation owns one Set, keyed by the operation's function
// signature. Architecture-specific packages register their variants via
// init() functions, and the kernels package uses the per-operation Set to
// select the best variant at call time based on detected CPU features and
// the alignment of the participating buffers.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-kernels/cpu"
)

// DeinterleaveRealInt16Func is the signature shared by all variants of the
// scaled real-part deinterleave operation: dst[i] = saturate(round(scale * real(src[i]))).
type DeinterleaveRealInt16Func func(dst []int16, src []complex64, scale float32)

// DotProductFunc is the signature shared by all variants of the complex
// dot product operation: sum over input[i] * taps[i].
type DotProductFunc func(input, taps []complex64) complex64

// Variant describes one registered implementation of a logical operation.
type Variant[F any] struct {
	// Name is a human-readable identifier for this variant (e.g., "avx2", "sse2_u").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this variant.
	SIMDLevel cpu.SIMDLevel

	// Align is the byte alignment every participating buffer must satisfy
	// for this variant to be eligible. Zero means any alignment. Must be a
	// power of two when non-zero.
	Align int

	// Priority determines selection order when multiple eligible variants
	// exist. Higher priority variants are preferred. Within one operation,
	// wider variants outrank narrower ones, fused variants outrank unfused
	// ones of the same width, and aligned-only variants outrank their
	// any-alignment twins.
	Priority int

	// Kernel is the variant's entry point.
	Kernel F
}

// Set manages the registration and lookup of variants for one logical operation.
//
// Variants register themselves via init() functions. At runtime, Select()
// picks the highest-priority variant compatible with the current CPU whose
// alignment requirement the call's buffers satisfy.
type Set[F any] struct {
	mu       sync.RWMutex
	name     string
	variants []Variant[F]
	sorted   bool // true if variants are sorted by priority (descending)
}

// NewSet returns an empty variant set for the named operation.
func NewSet[F any](name string) *Set[F] {
	return &Set[F]{name: name}
}

// Per-operation sets. These live here rather than in the kernels package so
// that architecture packages can register into them without import cycles.
var (
	// DeinterleaveRealInt16 holds the variants of the scaled real-part
	// deinterleave operation.
	DeinterleaveRealInt16 = NewSet[DeinterleaveRealInt16Func]("deinterleave_real_int16")

	// DotProduct holds the variants of the complex dot product operation.
	DotProduct = NewSet[DotProductFunc]("dot_product")
)

// Name returns the operation name this set was created with.
func (s *Set[F]) Name() string {
	return s.name
}

// Register adds a variant to the set.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Select().
func (s *Set[F]) Register(v Variant[F]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.variants = append(s.variants, v)
	s.sorted = false
}

// Select finds the best variant for the given CPU features and buffer alignment.
//
// align is the effective byte alignment of the call's buffers: the largest
// power of two dividing every participating pointer. A variant is eligible
// when its SIMD level is supported and its Align requirement is at most
// align. Returns the highest-priority eligible variant, or nil if none is
// eligible (which should never happen once a generic fallback with Align 0
// is registered).
//
// This function is thread-safe and performs lazy sorting of variants on first call.
func (s *Set[F]) Select(features cpu.Features, align int) *Variant[F] {
	s.ensureSorted()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.variants {
		v := &s.variants[i]
		if !cpu.Supports(features, v.SIMDLevel) {
			continue
		}
		if v.Align > align {
			continue
		}
		return v
	}

	return nil // Should never happen if a generic fallback is registered
}

// Eligible returns a copy of all variants supported by the given CPU features,
// sorted by priority (descending). Alignment requirements are not applied;
// callers re-check those per call since buffer pointers vary while the
// capability set is process-wide constant.
func (s *Set[F]) Eligible(features cpu.Features) []Variant[F] {
	s.ensureSorted()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Variant[F]
	for i := range s.variants {
		if cpu.Supports(features, s.variants[i].SIMDLevel) {
			out = append(out, s.variants[i])
		}
	}
	return out
}

// ByName returns the variant with the given name, or nil if none is registered.
// This is the manual-selection surface used by tests, benchmarks and tooling.
func (s *Set[F]) ByName(name string) *Variant[F] {
	s.ensureSorted()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.variants {
		if s.variants[i].Name == name {
			return &s.variants[i]
		}
	}
	return nil
}

// Variants returns a copy of all registered variants, sorted by priority.
// This function is primarily intended for diagnostics and testing.
func (s *Set[F]) Variants() []Variant[F] {
	s.ensureSorted()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Variant[F], len(s.variants))
	copy(out, s.variants)
	return out
}

// Len returns the number of registered variants.
func (s *Set[F]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.variants)
}

// Reset clears all registered variants.
// This function is intended for testing purposes only.
func (s *Set[F]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.variants = nil
	s.sorted = false
}

// ensureSorted sorts the variants by priority on first use after a mutation.
func (s *Set[F]) ensureSorted() {
	s.mu.Lock()
	if !s.sorted {
		s.sortByPriority()
		s.sorted = true
	}
	s.mu.Unlock()
}

// sortByPriority sorts variants by priority in descending order.
// Must be called with s.mu held (write lock).
func (s *Set[F]) sortByPriority() {
	// Simple insertion sort (a set is small, ~3-10 variants)
	for i := 1; i < len(s.variants); i++ {
		key := s.variants[i]
		j := i - 1
		for j >= 0 && s.variants[j].Priority < key.Priority {
			s.variants[j+1] = s.variants[j]
			j--
		}
		s.variants[j+1] = key
	}
}
