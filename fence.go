package acle

// compilerFence is the catch-all branch for every barrier and hint operand
// whose instruction does not exist on the active target. It emits nothing,
// but the call itself is opaque to the inliner, so the compiler cannot move
// or elide memory operations across it. The contract degrades from "the
// hardware orders this" to "the generated code orders this"; it never
// degrades to "nothing happens".
//
//go:noinline
func compilerFence() {}
