// Copyright ©2024 The ACLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package acle exposes the ARM hardware primitives of the ACLE (ARM C
// Language Extensions) surface to Go: memory barriers, hint instructions,
// cache prefetch, and system-register access, selected at build time for
// the active sub-architecture.
//
// Every operation resolves to a concrete instruction sequence when the
// compiler builds the package; there is no runtime feature detection and no
// runtime branch. The target is described entirely by build constraints:
// GOARCH=arm64 selects the A64 encodings, GOARCH=arm selects the A32
// encodings gated by the arm.5/arm.6/arm.7 feature tags the toolchain
// derives from GOARM, and the cortexm tag marks an M-profile build driven
// by an external toolchain. On targets where an instruction does not exist
// the operation degrades to a compiler-visible ordering barrier, never to a
// plain no-op: the surrounding code is still forbidden from reordering or
// eliding memory effects across the call.
//
// Barrier scopes and system registers are closed catalogues of zero-sized
// values. A scope or register that does not exist on the active target is
// not declared on that build, so selecting it is a compile error rather
// than a runtime fault.
//
// All functions in this package have hardware-level preconditions that the
// compiler cannot check: the required execution privilege, the memory-model
// reasoning that makes a given barrier scope sufficient, and the tolerance
// for spurious wakeups from the wait hints are the caller's responsibility,
// in the same way they are for the syscall surface of golang.org/x/sys.
// Misuse does not produce an error value; it produces a silent data race or
// a hardware exception.
package acle
