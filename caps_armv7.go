//go:build arm && arm.7 && !cortexm

package acle

// A32 v7: ARMv7-A/R. Barriers and hints are real; SEVL and the load-only
// barrier scopes are v8 additions and absent here.
const (
	IsA64       = false
	Is32Bit     = true
	IsMProfile  = false
	ArchVersion = 7

	HasBarrierInsns = true
	HasCP15Barrier  = false
	HasHintInsns    = true
	HasSEVL         = false
	HasDBG          = true
	HasPrefetch     = true
)
