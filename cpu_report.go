package acle

import "runtime"

// RuntimeFeatures is what the running CPU reports about itself, probed via
// golang.org/x/sys/cpu. Diagnostic only: nothing in this package dispatches
// on it, since every branch is resolved when the package is compiled.
type RuntimeFeatures struct {
	HasNEON    bool
	HasCRC32   bool
	HasAtomics bool
	HasSVE     bool
}

// CPUReport pairs the build-time capability vector this package was
// resolved against with the runtime-probed features of the host CPU. A
// mismatch (e.g. an arm.6 binary on a v8 core) is legal and common; the
// report exists to make it visible.
type CPUReport struct {
	GOARCH string
	Target string

	IsA64       bool
	Is32Bit     bool
	IsMProfile  bool
	ArchVersion int

	HasBarrierInsns bool
	HasCP15Barrier  bool
	HasHintInsns    bool
	HasSEVL         bool
	HasDBG          bool
	HasPrefetch     bool

	Runtime RuntimeFeatures
}

// Report returns the capability report for this binary on this host.
func Report() CPUReport {
	return CPUReport{
		GOARCH: runtime.GOARCH,
		Target: TargetDescription(),

		IsA64:       IsA64,
		Is32Bit:     Is32Bit,
		IsMProfile:  IsMProfile,
		ArchVersion: ArchVersion,

		HasBarrierInsns: HasBarrierInsns,
		HasCP15Barrier:  HasCP15Barrier,
		HasHintInsns:    HasHintInsns,
		HasSEVL:         HasSEVL,
		HasDBG:          HasDBG,
		HasPrefetch:     HasPrefetch,

		Runtime: runtimeFeatures(),
	}
}
