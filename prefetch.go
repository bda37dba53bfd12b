package acle

import "unsafe"

// Cache prefetch hints. The operand names the target cache level and the
// expected reuse pattern; like every hint the hardware may ignore it, and
// the real instructions never fault on a bad address. Only the real-
// instruction branches touch the memory system at all, so Prefetch is safe
// to call with any address on every target.

// prefetchDistance is how many cache lines ahead the streaming helpers
// prefetch. 8 lines of float32 keeps the L1 pipeline fed on the cores the
// kernels in this module's lineage were tuned on.
const prefetchDistance = 8

// PrefetchOp is a prefetch operand: target cache level plus reuse policy.
// Implemented only by the values in this package.
type PrefetchOp interface {
	prefetch(addr unsafe.Pointer)
}

// PLDL1KEEP prefetches for load into L1 with temporal reuse.
type PLDL1KEEP struct{}

// PLDL1STRM prefetches for load into L1 for streaming (single-use) data.
type PLDL1STRM struct{}

// PLDL2KEEP prefetches for load into L2 with temporal reuse.
type PLDL2KEEP struct{}

// PLDL3KEEP prefetches for load into L3 with temporal reuse.
type PLDL3KEEP struct{}

// PSTL1KEEP prefetches for store into L1 with temporal reuse.
type PSTL1KEEP struct{}

// PSTL1STRM prefetches for store into L1 for streaming data.
type PSTL1STRM struct{}

// Prefetch hints that the cache line containing addr will be accessed per
// op. Never faults, never blocks.
func Prefetch(op PrefetchOp, addr unsafe.Pointer) {
	op.prefetch(addr)
}

// PrefetchFloat32 hints that data[index] will be read soon. Out-of-range
// indices are ignored.
func PrefetchFloat32(data []float32, index int) {
	if index >= 0 && index < len(data) {
		Prefetch(PLDL1KEEP{}, unsafe.Pointer(&data[index]))
	}
}

// PrefetchFloat32Write hints that data[index] will be written soon.
// Out-of-range indices are ignored.
func PrefetchFloat32Write(data []float32, index int) {
	if index >= 0 && index < len(data) {
		Prefetch(PSTL1KEEP{}, unsafe.Pointer(&data[index]))
	}
}

// StreamingPrefetch prefetches ahead of a sequential read at currentIdx,
// for AXPY/DOT-shaped loops. 16 float32s per 64-byte cache line.
func StreamingPrefetch(data []float32, currentIdx int) {
	prefetchIdx := currentIdx + prefetchDistance*16
	if prefetchIdx < len(data) {
		Prefetch(PLDL1STRM{}, unsafe.Pointer(&data[prefetchIdx]))
	}
}

// StreamingPrefetchDual prefetches ahead in two arrays read in lockstep.
func StreamingPrefetchDual(x, y []float32, currentIdx int) {
	prefetchIdx := currentIdx + prefetchDistance*16
	if prefetchIdx < len(x) {
		Prefetch(PLDL1STRM{}, unsafe.Pointer(&x[prefetchIdx]))
	}
	if prefetchIdx < len(y) {
		Prefetch(PLDL1STRM{}, unsafe.Pointer(&y[prefetchIdx]))
	}
}

// TiledPrefetch prefetches the first cache lines of the next tile in a
// blocked algorithm.
func TiledPrefetch(data []float32, tileStartIdx, tileSize int) {
	nextTileStart := tileStartIdx + tileSize
	for i := 0; i < 64 && nextTileStart+i < len(data); i += 16 {
		Prefetch(PLDL2KEEP{}, unsafe.Pointer(&data[nextTileStart+i]))
	}
}
