//go:build arm64

package acle

// A64: ARMv8 64-bit ISA, A-profile. The full catalogue is real here.
const (
	// IsA64 reports whether the build targets the 64-bit ISA.
	IsA64 = true
	// Is32Bit reports whether the build targets the 32-bit ISA.
	Is32Bit = false
	// IsMProfile reports whether the build targets the M (microcontroller)
	// profile.
	IsMProfile = false
	// ArchVersion is the architecture version the build may assume.
	ArchVersion = 8

	// HasBarrierInsns reports whether DMB/DSB/ISB exist as dedicated
	// instructions on this target.
	HasBarrierInsns = true
	// HasCP15Barrier reports whether barriers are issued through the CP15
	// system coprocessor (ARMv6 A-profile only).
	HasCP15Barrier = false
	// HasHintInsns reports whether WFI/WFE/SEV/YIELD exist on this target.
	HasHintInsns = true
	// HasSEVL reports whether the local send-event instruction exists.
	HasSEVL = true
	// HasDBG reports whether the DBG hint exists (A32 v7 only; A64 dropped
	// it).
	HasDBG = false
	// HasPrefetch reports whether a dedicated prefetch instruction exists.
	HasPrefetch = true
)
