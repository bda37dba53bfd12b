//go:build !race

package acle

import "testing"

// Message-passing litmus on plain variables: no atomics, no channels, no
// locks between the two goroutines, so the barriers themselves carry the
// ordering. The producer separates the payload store from the flag store
// with a store barrier; the consumer separates the flag observation from
// the payload load with a full barrier. Deleting any of those barriers
// removes the only thing that (a) forces the compiler to reload the shared
// words across loop iterations and to keep the stores in order, and (b) on
// a weakly ordered ARM core, forbids the hardware from making the flag
// visible before the payload. A stale payload read fails the test.
//
// The variables are deliberately unsynchronized as far as the Go memory
// model is concerned, hence the !race constraint.
func TestBarrierMessagePassingOrdering(t *testing.T) {
	const rounds = 2000
	var data, flag, ack uint32

	go func() {
		for r := uint32(1); r <= rounds; r++ {
			data = r
			DMB(ISHST{})
			flag = r
			for ack != r {
				DMB(ISH{})
			}
			DMB(ISH{})
		}
	}()

	for r := uint32(1); r <= rounds; r++ {
		for flag != r {
			DMB(ISH{})
		}
		DMB(ISH{})
		if got := data; got != r {
			t.Fatalf("round %d: flag observed but payload reads %d", r, got)
		}
		DMB(ISH{})
		ack = r
	}
}
