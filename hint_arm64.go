//go:build arm64

package acle

// A64 hints are all real. Implemented in hint_arm64.s.

func wfi()
func wfe()
func sev()
func sevl()
func yield()
func nop()
