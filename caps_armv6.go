//go:build arm && arm.6 && !arm.7 && !cortexm

package acle

// A32 v6: barriers exist only as CP15 c7 operations (full-system scope);
// the v6K hint instructions are not assumed.
const (
	IsA64       = false
	Is32Bit     = true
	IsMProfile  = false
	ArchVersion = 6

	HasBarrierInsns = false
	HasCP15Barrier  = true
	HasHintInsns    = false
	HasSEVL         = false
	HasDBG          = false
	HasPrefetch     = false
)
