//go:build arm

package acle

import "golang.org/x/sys/cpu"

func runtimeFeatures() RuntimeFeatures {
	return RuntimeFeatures{
		HasNEON:  cpu.ARM.HasNEON,
		HasCRC32: cpu.ARM.HasCRC32,
		// LDREX/STREX are baseline from v6; the v8.1 LSE probe has no
		// 32-bit counterpart.
		HasAtomics: false,
		HasSVE:     false,
	}
}
