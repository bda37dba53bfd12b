//go:build !arm || !arm.7 || cortexm

package acle

// DBG exists only in A32 v7; everywhere else every immediate takes the
// fence branch.

func (DBG0) dbg()  { compilerFence() }
func (DBG1) dbg()  { compilerFence() }
func (DBG2) dbg()  { compilerFence() }
func (DBG3) dbg()  { compilerFence() }
func (DBG4) dbg()  { compilerFence() }
func (DBG5) dbg()  { compilerFence() }
func (DBG6) dbg()  { compilerFence() }
func (DBG7) dbg()  { compilerFence() }
func (DBG8) dbg()  { compilerFence() }
func (DBG9) dbg()  { compilerFence() }
func (DBG10) dbg() { compilerFence() }
func (DBG11) dbg() { compilerFence() }
func (DBG12) dbg() { compilerFence() }
func (DBG13) dbg() { compilerFence() }
func (DBG14) dbg() { compilerFence() }
func (DBG15) dbg() { compilerFence() }
