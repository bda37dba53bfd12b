//go:build arm && !arm.6 && !cortexm

package acle

// A32 v5: no barrier or hint instructions at all; everything degrades to
// the compiler fence.
const (
	IsA64       = false
	Is32Bit     = true
	IsMProfile  = false
	ArchVersion = 5

	HasBarrierInsns = false
	HasCP15Barrier  = false
	HasHintInsns    = false
	HasSEVL         = false
	HasDBG          = false
	HasPrefetch     = false
)
