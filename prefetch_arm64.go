//go:build arm64

package acle

import "unsafe"

// A64 branch: PRFM with the matching policy operand. Stubs in
// prefetch_arm64.s.

//go:noescape
func prfmPLDL1KEEP(addr unsafe.Pointer)

//go:noescape
func prfmPLDL1STRM(addr unsafe.Pointer)

//go:noescape
func prfmPLDL2KEEP(addr unsafe.Pointer)

//go:noescape
func prfmPLDL3KEEP(addr unsafe.Pointer)

//go:noescape
func prfmPSTL1KEEP(addr unsafe.Pointer)

//go:noescape
func prfmPSTL1STRM(addr unsafe.Pointer)

func (PLDL1KEEP) prefetch(addr unsafe.Pointer) { prfmPLDL1KEEP(addr) }
func (PLDL1STRM) prefetch(addr unsafe.Pointer) { prfmPLDL1STRM(addr) }
func (PLDL2KEEP) prefetch(addr unsafe.Pointer) { prfmPLDL2KEEP(addr) }
func (PLDL3KEEP) prefetch(addr unsafe.Pointer) { prfmPLDL3KEEP(addr) }
func (PSTL1KEEP) prefetch(addr unsafe.Pointer) { prfmPSTL1KEEP(addr) }
func (PSTL1STRM) prefetch(addr unsafe.Pointer) { prfmPSTL1STRM(addr) }
