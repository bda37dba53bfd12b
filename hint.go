package acle

// Hint instructions. Each entry point forwards to the branch selected at
// build time: the real instruction where the target has one, the compiler
// fence where it does not. A hint is architecturally allowed to do nothing,
// so the fence branch loses no guarantee beyond the power/performance
// effect.

// WFI waits for an interrupt. The calling thread's processor may suspend
// until an interrupt is delivered; the architecture permits a spurious
// resume at any time, so callers must re-check their wakeup condition and
// re-issue the wait. Not cancellable from this package.
func WFI() {
	wfi()
}

// WFE waits for an event: a SEV from any processor, a SEVL on this
// processor, an interrupt, or a spurious wakeup. The same re-check
// obligation as WFI applies.
func WFE() {
	wfe()
}

// SEV signals an event to all processors, releasing any of them blocked in
// WFE. Issuing it repeatedly is legal and has no cumulative effect.
func SEV() {
	sev()
}

// SEVL signals an event to the issuing processor only, priming a subsequent
// WFE so it falls through immediately. v8 instruction; older targets get
// the fence branch.
func SEVL() {
	sevl()
}

// Yield hints that the current thread of execution can cede the processor,
// typically inside a spin loop on an SMT core.
func Yield() {
	yield()
}

// NOP emits one architectural no-op instruction. Unlike the fence branch it
// occupies an issue slot; like every operation here it is never elided or
// merged by the surrounding code generator.
func NOP() {
	nop()
}
