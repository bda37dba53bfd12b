//go:build !arm && !arm64

package acle

// Non-ARM host. Kept buildable so the fence fallback and its ordering
// contract are testable anywhere; no instruction is ever real here and no
// register is constructible.
const (
	IsA64       = false
	Is32Bit     = false
	IsMProfile  = false
	ArchVersion = 0

	HasBarrierInsns = false
	HasCP15Barrier  = false
	HasHintInsns    = false
	HasSEVL         = false
	HasDBG          = false
	HasPrefetch     = false
)
