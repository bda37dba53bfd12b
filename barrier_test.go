package acle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The eight scopes that exist on every supported target. The v8 load-only
// scopes are covered in barrier_arm64_test.go, where they are nameable.
func commonDMBScopes() []DMBScope {
	return []DMBScope{SY{}, ST{}, ISH{}, ISHST{}, NSH{}, NSHST{}, OSH{}, OSHST{}}
}

func commonDSBScopes() []DSBScope {
	return []DSBScope{SY{}, ST{}, ISH{}, ISHST{}, NSH{}, NSHST{}, OSH{}, OSHST{}}
}

// Every catalogued scope must resolve to exactly one branch on the active
// target and execute without faulting, regardless of which branch that is.
func TestBarrierScopeCatalogue(t *testing.T) {
	for _, s := range commonDMBScopes() {
		s := s
		require.NotPanics(t, func() { DMB(s) })
	}
	for _, s := range commonDSBScopes() {
		s := s
		require.NotPanics(t, func() { DSB(s) })
	}
	require.NotPanics(t, func() { ISB(SY{}) })
}

// A barrier must never disturb the effects it orders: interleaving barriers
// with plain updates leaves the updates intact and sequenced.
func TestBarrierPreservesSurroundingEffects(t *testing.T) {
	sum := 0
	for i := 1; i <= 1000; i++ {
		sum += i
		DMB(ISH{})
	}
	DSB(SY{})
	require.Equal(t, 1000*1001/2, sum)
}
