// Package buffer provides alignment-aware buffer allocation for kernel
// processing. Kernel functions accept raw slices; the allocators here
// guarantee that a slice's backing array starts at the process's preferred
// SIMD alignment, which lets dispatch choose aligned-only kernel variants.
// The package also hosts the pointer-alignment predicate consulted by
// dispatch on every call.
package buffer
