package acle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Event and yield hints have no cumulative effect; issuing them repeatedly
// is always legal.
func TestHintIdempotence(t *testing.T) {
	for i := 0; i < 64; i++ {
		SEV()
		SEVL()
		Yield()
		NOP()
	}
}

// SEV sets the event register of every processor, so a subsequent WFE on
// the issuing thread falls through (or wakes on the next tick); on targets
// where WFE is the fence branch it returns immediately. Either way the test
// must terminate.
func TestWaitForEventAfterSend(t *testing.T) {
	SEV()
	WFE()
}

// SEVL primes only the local event register; follow the architected
// spin-loop idiom SEVL; WFE to consume it.
func TestLocalEventPrimesWait(t *testing.T) {
	SEVL()
	WFE()
}

func TestDebugHintCatalogue(t *testing.T) {
	hints := []DebugHint{
		DBG0{}, DBG1{}, DBG2{}, DBG3{}, DBG4{}, DBG5{}, DBG6{}, DBG7{},
		DBG8{}, DBG9{}, DBG10{}, DBG11{}, DBG12{}, DBG13{}, DBG14{}, DBG15{},
	}
	require.Len(t, hints, 16, "DBG immediates are exactly the 4-bit range")
	for _, h := range hints {
		h := h
		require.NotPanics(t, func() { DBG(h) })
	}
}
