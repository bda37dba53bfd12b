//go:build arm && arm.7 && !cortexm

package acle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPSRReadable(t *testing.T) {
	// Flag state is unpredictable here; the read completing without a
	// fault is the property under test.
	_ = ReadReg32(APSR{})
}

func TestUserThreadIDReadable(t *testing.T) {
	_ = ReadRegPtr(TPIDRURO{})
}

func TestFPSCRRoundTrip(t *testing.T) {
	old := ReadReg32(FPSCR{})
	defer WriteReg32(FPSCR{}, old)

	WriteReg32(FPSCR{}, old|1) // IOC cumulative flag
	require.Equal(t, old|1, ReadReg32(FPSCR{}))
}
