//go:build arm && arm.6 && !arm.7 && !cortexm

package acle

// A32 v6 branch: no dedicated barrier instructions; the CP15 c7 operations
// provide full-system barriers only. Every scope maps to the full-system
// operation, which is a strict superset of the scope's documented
// guarantee.

func cp15dmb()
func cp15dsb()
func cp15isb()

func (SY) dmb()    { cp15dmb() }
func (ST) dmb()    { cp15dmb() }
func (ISH) dmb()   { cp15dmb() }
func (ISHST) dmb() { cp15dmb() }
func (NSH) dmb()   { cp15dmb() }
func (NSHST) dmb() { cp15dmb() }
func (OSH) dmb()   { cp15dmb() }
func (OSHST) dmb() { cp15dmb() }

func (SY) dsb()    { cp15dsb() }
func (ST) dsb()    { cp15dsb() }
func (ISH) dsb()   { cp15dsb() }
func (ISHST) dsb() { cp15dsb() }
func (NSH) dsb()   { cp15dsb() }
func (NSHST) dsb() { cp15dsb() }
func (OSH) dsb()   { cp15dsb() }
func (OSHST) dsb() { cp15dsb() }

func (SY) isb() { cp15isb() }
