// Package kernels provides runtime-dispatched vector kernels for complex
// sample streams.
//
// Two kernel families are exposed. DeinterleaveRealInt16 extracts the real
// part of interleaved complex samples, scales it and quantizes to int16
// with saturation. DotProduct computes the unconjugated complex dot
// product of two sample vectors. Each family carries several variants
// shaped after particular vector instruction sets, registered by the
// architecture packages under arch/. At call time the dispatcher picks
// the highest-priority variant whose instruction set the CPU supports and
// whose alignment requirement the call's buffers satisfy.
//
// Selection is transparent. All deinterleave variants produce identical
// output, and all dot product variants agree within a small relative
// tolerance that follows from their differing accumulation orders. The
// purego build tag restricts dispatch to the portable generic variants.
// Allocating with the buffer package gives buffers the alignment the
// widest aligned-only variants require.
package kernels
