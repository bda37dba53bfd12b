package acle

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapabilityVectorCoherence(t *testing.T) {
	require.False(t, IsA64 && Is32Bit, "a target cannot be both ISAs")
	if IsMProfile {
		require.True(t, Is32Bit, "M profile is a 32-bit profile")
	}
	if HasCP15Barrier {
		require.False(t, HasBarrierInsns, "CP15 barriers and dedicated barriers are exclusive")
		require.Equal(t, 6, ArchVersion)
	}
	if HasSEVL {
		require.True(t, HasHintInsns, "SEVL implies the hint family exists")
	}
	if HasDBG {
		require.True(t, Is32Bit && !IsMProfile, "DBG is A32-only")
		require.Equal(t, 7, ArchVersion)
	}
}

func TestCapabilityVectorMatchesGOARCH(t *testing.T) {
	switch runtime.GOARCH {
	case "arm64":
		require.True(t, IsA64)
		require.False(t, Is32Bit)
		require.Equal(t, 8, ArchVersion)
		require.True(t, HasBarrierInsns)
		require.True(t, HasSEVL)
	case "arm":
		require.False(t, IsA64)
		require.True(t, Is32Bit)
		require.GreaterOrEqual(t, ArchVersion, 5)
		require.LessOrEqual(t, ArchVersion, 7)
	default:
		require.False(t, IsA64)
		require.False(t, Is32Bit)
		require.False(t, IsMProfile)
		require.Zero(t, ArchVersion)
		require.False(t, HasBarrierInsns || HasCP15Barrier || HasHintInsns || HasPrefetch)
	}
}

func TestTargetDescription(t *testing.T) {
	desc := TargetDescription()
	require.NotEmpty(t, desc)
	switch runtime.GOARCH {
	case "arm64":
		require.Equal(t, "A64 v8", desc)
	case "arm":
		require.Contains(t, desc, "v")
	default:
		require.Equal(t, "non-ARM host", desc)
	}
}
