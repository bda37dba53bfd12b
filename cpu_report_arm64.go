//go:build arm64

package acle

import "golang.org/x/sys/cpu"

// ASIMD (NEON) is architecturally mandatory on arm64; the probe still reads
// it from the kernel's view rather than hard-coding it.
func runtimeFeatures() RuntimeFeatures {
	return RuntimeFeatures{
		HasNEON:    cpu.ARM64.HasASIMD,
		HasCRC32:   cpu.ARM64.HasCRC32,
		HasAtomics: cpu.ARM64.HasATOMICS,
		HasSVE:     cpu.ARM64.HasSVE,
	}
}
