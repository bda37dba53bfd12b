//go:build arm64

package acle

// A64 branch: every scope has a real DMB/DSB encoding. The load-only scopes
// exist only in v8, so their types live here rather than in barrier.go.

// LD orders reads against the full system.
type LD struct{}

// ISHLD orders reads against the inner shareable domain.
type ISHLD struct{}

// NSHLD orders reads against the non-shareable domain.
type NSHLD struct{}

// OSHLD orders reads against the outer shareable domain.
type OSHLD struct{}

// Implemented in barrier_arm64.s, one stub per (instruction, CRm option)
// encoding.

func dmbSY()
func dmbST()
func dmbLD()
func dmbISH()
func dmbISHST()
func dmbISHLD()
func dmbNSH()
func dmbNSHST()
func dmbNSHLD()
func dmbOSH()
func dmbOSHST()
func dmbOSHLD()

func dsbSY()
func dsbST()
func dsbLD()
func dsbISH()
func dsbISHST()
func dsbISHLD()
func dsbNSH()
func dsbNSHST()
func dsbNSHLD()
func dsbOSH()
func dsbOSHST()
func dsbOSHLD()

func isbSY()

func (SY) dmb()    { dmbSY() }
func (ST) dmb()    { dmbST() }
func (LD) dmb()    { dmbLD() }
func (ISH) dmb()   { dmbISH() }
func (ISHST) dmb() { dmbISHST() }
func (ISHLD) dmb() { dmbISHLD() }
func (NSH) dmb()   { dmbNSH() }
func (NSHST) dmb() { dmbNSHST() }
func (NSHLD) dmb() { dmbNSHLD() }
func (OSH) dmb()   { dmbOSH() }
func (OSHST) dmb() { dmbOSHST() }
func (OSHLD) dmb() { dmbOSHLD() }

func (SY) dsb()    { dsbSY() }
func (ST) dsb()    { dsbST() }
func (LD) dsb()    { dsbLD() }
func (ISH) dsb()   { dsbISH() }
func (ISHST) dsb() { dsbISHST() }
func (ISHLD) dsb() { dsbISHLD() }
func (NSH) dsb()   { dsbNSH() }
func (NSHST) dsb() { dsbNSHST() }
func (NSHLD) dsb() { dsbNSHLD() }
func (OSH) dsb()   { dsbOSH() }
func (OSHST) dsb() { dsbOSHST() }
func (OSHLD) dsb() { dsbOSHLD() }

func (SY) isb() { isbSY() }
