//go:build arm && arm.7 && !cortexm

package acle

// A32 v7 branch: DMB/DSB/ISB are real for the eight v7 scopes. The
// instructions predate named-operand assembler support in the gc toolchain,
// so barrier_armv7.s encodes them as raw words.

func dmbSY()
func dmbST()
func dmbISH()
func dmbISHST()
func dmbNSH()
func dmbNSHST()
func dmbOSH()
func dmbOSHST()

func dsbSY()
func dsbST()
func dsbISH()
func dsbISHST()
func dsbNSH()
func dsbNSHST()
func dsbOSH()
func dsbOSHST()

func isbSY()

func (SY) dmb()    { dmbSY() }
func (ST) dmb()    { dmbST() }
func (ISH) dmb()   { dmbISH() }
func (ISHST) dmb() { dmbISHST() }
func (NSH) dmb()   { dmbNSH() }
func (NSHST) dmb() { dmbNSHST() }
func (OSH) dmb()   { dmbOSH() }
func (OSHST) dmb() { dmbOSHST() }

func (SY) dsb()    { dsbSY() }
func (ST) dsb()    { dsbST() }
func (ISH) dsb()   { dsbISH() }
func (ISHST) dsb() { dsbISHST() }
func (NSH) dsb()   { dsbNSH() }
func (NSHST) dsb() { dsbNSHST() }
func (OSH) dsb()   { dsbOSH() }
func (OSHST) dsb() { dsbOSHST() }

func (SY) isb() { isbSY() }
