//go:build arm && arm.7 && !cortexm

package acle

// A32 v7 system-register catalogue. APSR is read with MRS; the CP15
// registers with MRC/MCR; FPSCR with VMRS/VMSR; the 64-bit virtual counter
// with MRRC. Stubs in sysreg_armv7.s.

// APSR is the application program status register (flags in bits 31:27).
type APSR struct{}

// FPSCR is the VFP/NEON status and control register. Requires a target
// with VFP.
type FPSCR struct{}

// TPIDRURW is the user read/write software thread ID register.
type TPIDRURW struct{}

// TPIDRURO is the user read-only software thread ID register; the gc
// runtime owns it on linux (it carries g when cgo is in play).
type TPIDRURO struct{}

// MIDR is the main ID register. Privileged.
type MIDR struct{}

// CNTFRQ is the counter frequency in Hz. Readable at PL0 when the kernel
// enables user counter access.
type CNTFRQ struct{}

// CNTVCT is the 64-bit virtual counter, same PL0 gating as CNTFRQ.
type CNTVCT struct{}

func readAPSR() uint32
func readFPSCR() uint32
func writeFPSCR(v uint32)
func readTPIDRURW() uint32
func writeTPIDRURW(v uint32)
func readTPIDRURO() uint32
func readMIDR() uint32
func readCNTFRQ() uint32
func readCNTVCT() uint64

func (APSR) read32() uint32 { return readAPSR() }

func (FPSCR) read32() uint32   { return readFPSCR() }
func (FPSCR) write32(v uint32) { writeFPSCR(v) }

func (TPIDRURW) readPtr() uintptr   { return uintptr(readTPIDRURW()) }
func (TPIDRURW) writePtr(v uintptr) { writeTPIDRURW(uint32(v)) }

func (TPIDRURO) readPtr() uintptr { return uintptr(readTPIDRURO()) }

func (MIDR) read32() uint32   { return readMIDR() }
func (CNTFRQ) read32() uint32 { return readCNTFRQ() }
func (CNTVCT) read64() uint64 { return readCNTVCT() }
