package acle

// System registers are zero-sized tokens from per-target catalogues
// (sysreg_arm64.go, sysreg_armv7.go). A register carries three pieces of
// identity: which target profiles it exists on (its declaring file's build
// constraint), which access width it supports (which of the sealed
// contracts below it implements), and whether it is readable, writable, or
// both. A register that does not exist on the active target is not
// declared, so naming it fails to compile. Register access has no fence
// branch; there is no software emulation of a hardware register.
//
// Privileged registers (named with their exception-level suffix, or
// documented as privileged) fault when accessed without the required
// privilege. Knowing the current privilege is the caller's obligation.

// Reg32 is a system register readable as 32 bits.
type Reg32 interface {
	read32() uint32
}

// Reg32Writable is a system register writable as 32 bits.
type Reg32Writable interface {
	write32(v uint32)
}

// Reg64 is a system register readable as 64 bits.
type Reg64 interface {
	read64() uint64
}

// Reg64Writable is a system register writable as 64 bits.
type Reg64Writable interface {
	write64(v uint64)
}

// RegPtr is a system register readable at pointer width.
type RegPtr interface {
	readPtr() uintptr
}

// RegPtrWritable is a system register writable at pointer width.
type RegPtrWritable interface {
	writePtr(v uintptr)
}

// ReadReg32 returns the current 32-bit value of r.
func ReadReg32(r Reg32) uint32 {
	return r.read32()
}

// WriteReg32 sets r to v. A write that changes execution state (flags,
// masks, translation control) generally needs an ISB before dependent
// instructions observe it.
func WriteReg32(r Reg32Writable, v uint32) {
	r.write32(v)
}

// ReadReg64 returns the current 64-bit value of r.
func ReadReg64(r Reg64) uint64 {
	return r.read64()
}

// WriteReg64 sets r to v. See WriteReg32 for the context-synchronization
// obligation.
func WriteReg64(r Reg64Writable, v uint64) {
	r.write64(v)
}

// ReadRegPtr returns the current value of r at the target's pointer width.
func ReadRegPtr(r RegPtr) uintptr {
	return r.readPtr()
}

// WriteRegPtr sets r to v. See WriteReg32 for the context-synchronization
// obligation.
func WriteRegPtr(r RegPtrWritable, v uintptr) {
	r.writePtr(v)
}
