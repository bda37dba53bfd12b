package acle

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportMirrorsBuildVector(t *testing.T) {
	r := Report()
	require.Equal(t, runtime.GOARCH, r.GOARCH)
	require.Equal(t, TargetDescription(), r.Target)
	require.Equal(t, bool(IsA64), r.IsA64)
	require.Equal(t, bool(Is32Bit), r.Is32Bit)
	require.Equal(t, bool(IsMProfile), r.IsMProfile)
	require.Equal(t, int(ArchVersion), r.ArchVersion)
	require.Equal(t, bool(HasBarrierInsns), r.HasBarrierInsns)
	require.Equal(t, bool(HasPrefetch), r.HasPrefetch)
}

func TestRuntimeProbeConsistency(t *testing.T) {
	r := Report()
	if runtime.GOARCH == "arm64" && (runtime.GOOS == "linux" || runtime.GOOS == "darwin") {
		// ASIMD is architecturally mandatory on arm64; these are the
		// hosts where the probe is known to surface it.
		require.True(t, r.Runtime.HasNEON)
	}
	if runtime.GOARCH != "arm" && runtime.GOARCH != "arm64" {
		require.Equal(t, RuntimeFeatures{}, r.Runtime)
	}
}
