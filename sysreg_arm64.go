//go:build arm64

package acle

// A64 system-register catalogue. MRS/MSR stubs live in sysreg_arm64.s.
//
// EL0-accessible: TPIDR_EL0, TPIDRRO_EL0 (read), CNTVCT_EL0, CNTFRQ_EL0,
// NZCV, FPCR, FPSR. MIDR_EL1 and MPIDR_EL1 trap at EL0 but Linux emulates
// the reads. The _EL1 registers and DAIF otherwise require EL1.
//
// Writing TPIDR_EL0 replaces the thread pointer the C runtime may be using;
// callers inside a cgo binary own that hazard.

// TPIDR_EL0 is the EL0 read/write software thread ID register.
type TPIDR_EL0 struct{}

// TPIDRRO_EL0 is the EL0 read-only software thread ID register (writable
// only from EL1).
type TPIDRRO_EL0 struct{}

// CNTVCT_EL0 is the virtual counter. Reads are not self-ordering; pair with
// an ISB when the read must not be hoisted above earlier instructions.
type CNTVCT_EL0 struct{}

// CNTFRQ_EL0 is the counter frequency in Hz, set by firmware.
type CNTFRQ_EL0 struct{}

// MIDR_EL1 is the main ID register. Privileged; Linux emulates EL0 reads.
type MIDR_EL1 struct{}

// MPIDR_EL1 is the multiprocessor affinity register. Privileged; Linux
// emulates EL0 reads.
type MPIDR_EL1 struct{}

// NZCV holds the condition flags in bits 31:28.
type NZCV struct{}

// FPCR is the floating-point control register.
type FPCR struct{}

// FPSR is the floating-point status register (cumulative exception flags).
type FPSR struct{}

// DAIF holds the interrupt mask bits. Privileged.
type DAIF struct{}

// VBAR_EL1 is the EL1 vector base address. Privileged.
type VBAR_EL1 struct{}

// TTBR0_EL1 is the EL1 translation table base for the low half. Privileged.
type TTBR0_EL1 struct{}

func readTPIDR_EL0() uint64
func writeTPIDR_EL0(v uint64)
func readTPIDRRO_EL0() uint64
func readCNTVCT_EL0() uint64
func readCNTFRQ_EL0() uint64
func readMIDR_EL1() uint64
func readMPIDR_EL1() uint64
func readNZCV() uint64
func writeNZCV(v uint64)
func readFPCR() uint64
func writeFPCR(v uint64)
func readFPSR() uint64
func writeFPSR(v uint64)
func readDAIF() uint64
func writeDAIF(v uint64)
func readVBAR_EL1() uint64
func writeVBAR_EL1(v uint64)
func readTTBR0_EL1() uint64
func writeTTBR0_EL1(v uint64)

func (TPIDR_EL0) read64() uint64     { return readTPIDR_EL0() }
func (TPIDR_EL0) write64(v uint64)   { writeTPIDR_EL0(v) }
func (TPIDR_EL0) readPtr() uintptr   { return uintptr(readTPIDR_EL0()) }
func (TPIDR_EL0) writePtr(v uintptr) { writeTPIDR_EL0(uint64(v)) }

func (TPIDRRO_EL0) read64() uint64   { return readTPIDRRO_EL0() }
func (TPIDRRO_EL0) readPtr() uintptr { return uintptr(readTPIDRRO_EL0()) }

func (CNTVCT_EL0) read64() uint64 { return readCNTVCT_EL0() }
func (CNTFRQ_EL0) read64() uint64 { return readCNTFRQ_EL0() }
func (MIDR_EL1) read64() uint64   { return readMIDR_EL1() }
func (MPIDR_EL1) read64() uint64  { return readMPIDR_EL1() }

func (NZCV) read32() uint32   { return uint32(readNZCV()) }
func (NZCV) write32(v uint32) { writeNZCV(uint64(v)) }
func (FPCR) read32() uint32   { return uint32(readFPCR()) }
func (FPCR) write32(v uint32) { writeFPCR(uint64(v)) }
func (FPSR) read32() uint32   { return uint32(readFPSR()) }
func (FPSR) write32(v uint32) { writeFPSR(uint64(v)) }
func (DAIF) read32() uint32   { return uint32(readDAIF()) }
func (DAIF) write32(v uint32) { writeDAIF(uint64(v)) }

func (VBAR_EL1) readPtr() uintptr   { return uintptr(readVBAR_EL1()) }
func (VBAR_EL1) writePtr(v uintptr) { writeVBAR_EL1(uint64(v)) }

func (TTBR0_EL1) read64() uint64   { return readTTBR0_EL1() }
func (TTBR0_EL1) write64(v uint64) { writeTTBR0_EL1(v) }
