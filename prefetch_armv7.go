//go:build arm && arm.7 && !cortexm

package acle

import "unsafe"

// A32 branch: PLD only. It carries no cache-level or policy field and no
// store variant is assumed (PLDW needs the multiprocessing extensions), so
// every operand maps to the plain load prefetch. A weaker hint, not a
// weaker guarantee: prefetch has no correctness contract.

//go:noescape
func pld(addr unsafe.Pointer)

func (PLDL1KEEP) prefetch(addr unsafe.Pointer) { pld(addr) }
func (PLDL1STRM) prefetch(addr unsafe.Pointer) { pld(addr) }
func (PLDL2KEEP) prefetch(addr unsafe.Pointer) { pld(addr) }
func (PLDL3KEEP) prefetch(addr unsafe.Pointer) { pld(addr) }
func (PSTL1KEEP) prefetch(addr unsafe.Pointer) { pld(addr) }
func (PSTL1STRM) prefetch(addr unsafe.Pointer) { pld(addr) }
