//go:build !arm64 && (!arm || cortexm || !arm.7)

package acle

// Catch-all branch for targets without hint instructions (ARMv5/v6,
// M-profile builds, non-ARM hosts). The wait hints cannot block here; they
// return immediately, which is within the spurious-wakeup contract every
// caller already has to tolerate.

func wfi()   { compilerFence() }
func wfe()   { compilerFence() }
func sev()   { compilerFence() }
func sevl()  { compilerFence() }
func yield() { compilerFence() }
func nop()   { compilerFence() }
