//go:build arm && cortexm && !arm.7

package acle

// M-profile, v6-M baseline (Cortex-M0/M0+). The gc toolchain cannot emit
// Thumb-only code, so a cortexm build is always driven by an external
// toolchain; this package contributes the fence branches and the capability
// vector, and exposes no system registers.
const (
	IsA64       = false
	Is32Bit     = true
	IsMProfile  = true
	ArchVersion = 6

	HasBarrierInsns = false
	HasCP15Barrier  = false
	HasHintInsns    = false
	HasSEVL         = false
	HasDBG          = false
	HasPrefetch     = false
)
