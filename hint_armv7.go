//go:build arm && arm.7 && !cortexm

package acle

// A32 v7 hints. SEVL does not exist before v8, so the local send-event
// takes the fence branch here; waking a v7 WFE from the same processor
// requires a global SEV.

func wfi()
func wfe()
func sev()
func yield()
func nop()

func sevl() { compilerFence() }
