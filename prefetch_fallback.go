//go:build !arm64 && (!arm || cortexm || !arm.7)

package acle

import "unsafe"

// Catch-all branch: no prefetch instruction. A real prefetch never faults,
// so the fallback must not dereference addr; it degrades to the fence like
// the other hints and leaves prefetching to the hardware stride detector.

func (PLDL1KEEP) prefetch(unsafe.Pointer) { compilerFence() }
func (PLDL1STRM) prefetch(unsafe.Pointer) { compilerFence() }
func (PLDL2KEEP) prefetch(unsafe.Pointer) { compilerFence() }
func (PLDL3KEEP) prefetch(unsafe.Pointer) { compilerFence() }
func (PSTL1KEEP) prefetch(unsafe.Pointer) { compilerFence() }
func (PSTL1STRM) prefetch(unsafe.Pointer) { compilerFence() }
