//go:build arm && cortexm && arm.7

package acle

// M-profile, v7-M (Cortex-M3 and up). Same degradation policy as v6-M; the
// version is kept distinct because the v7-M register file differs, which
// matters to external toolchains layering on this vector.
const (
	IsA64       = false
	Is32Bit     = true
	IsMProfile  = true
	ArchVersion = 7

	HasBarrierInsns = false
	HasCP15Barrier  = false
	HasHintInsns    = false
	HasSEVL         = false
	HasDBG          = false
	HasPrefetch     = false
)
