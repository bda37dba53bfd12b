//go:build !arm64 && (!arm || cortexm || !arm.6)

package acle

// Catch-all branch: ARMv5, M-profile builds, and non-ARM hosts. No barrier
// instruction exists, so every scope resolves to the compiler fence. The
// ordering contract survives at the code-generation level; only the
// hardware half of the guarantee is vacuous, which on these targets it
// would be anyway.

func (SY) dmb()    { compilerFence() }
func (ST) dmb()    { compilerFence() }
func (ISH) dmb()   { compilerFence() }
func (ISHST) dmb() { compilerFence() }
func (NSH) dmb()   { compilerFence() }
func (NSHST) dmb() { compilerFence() }
func (OSH) dmb()   { compilerFence() }
func (OSHST) dmb() { compilerFence() }

func (SY) dsb()    { compilerFence() }
func (ST) dsb()    { compilerFence() }
func (ISH) dsb()   { compilerFence() }
func (ISHST) dsb() { compilerFence() }
func (NSH) dsb()   { compilerFence() }
func (NSHST) dsb() { compilerFence() }
func (OSH) dsb()   { compilerFence() }
func (OSHST) dsb() { compilerFence() }

func (SY) isb() { compilerFence() }
