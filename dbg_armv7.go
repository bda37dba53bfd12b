//go:build arm && arm.7 && !cortexm

package acle

// A32 v7 DBG branch, one stub per immediate. Implemented in dbg_armv7.s.

func dbg0()
func dbg1()
func dbg2()
func dbg3()
func dbg4()
func dbg5()
func dbg6()
func dbg7()
func dbg8()
func dbg9()
func dbg10()
func dbg11()
func dbg12()
func dbg13()
func dbg14()
func dbg15()

func (DBG0) dbg()  { dbg0() }
func (DBG1) dbg()  { dbg1() }
func (DBG2) dbg()  { dbg2() }
func (DBG3) dbg()  { dbg3() }
func (DBG4) dbg()  { dbg4() }
func (DBG5) dbg()  { dbg5() }
func (DBG6) dbg()  { dbg6() }
func (DBG7) dbg()  { dbg7() }
func (DBG8) dbg()  { dbg8() }
func (DBG9) dbg()  { dbg9() }
func (DBG10) dbg() { dbg10() }
func (DBG11) dbg() { dbg11() }
func (DBG12) dbg() { dbg12() }
func (DBG13) dbg() { dbg13() }
func (DBG14) dbg() { dbg14() }
func (DBG15) dbg() { dbg15() }
