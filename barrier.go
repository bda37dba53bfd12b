package acle

// Barrier scopes are zero-sized values from a closed catalogue. Each scope
// names one documented (shareability domain, access type) pair; a scope is
// never parameterized. The contracts below are sealed: the methods are
// unexported, so no type outside this package can satisfy them, and no
// caller can smuggle an unchecked scope past the capability gate.
//
// The scopes below exist on every supported target. The load-only scopes
// (LD, ISHLD, NSHLD, OSHLD) are v8 additions and are declared only on
// arm64 builds; naming one elsewhere is a compile error.

// DMBScope is a scope accepted by DMB. Implemented only by the barrier
// scope values in this package.
type DMBScope interface {
	dmb()
}

// DSBScope is a scope accepted by DSB. Implemented only by the barrier
// scope values in this package.
type DSBScope interface {
	dsb()
}

// ISBScope is a scope accepted by ISB. SY is the only value; the
// architecture defines no other ISB operand.
type ISBScope interface {
	isb()
}

// SY orders reads and writes against the full system.
type SY struct{}

// ST orders writes against the full system.
type ST struct{}

// ISH orders reads and writes against the inner shareable domain.
type ISH struct{}

// ISHST orders writes against the inner shareable domain.
type ISHST struct{}

// NSH orders reads and writes against the non-shareable domain.
type NSH struct{}

// NSHST orders writes against the non-shareable domain.
type NSHST struct{}

// OSH orders reads and writes against the outer shareable domain.
type OSH struct{}

// OSHST orders writes against the outer shareable domain.
type OSHST struct{}

// DMB issues a data memory barrier with the given scope: memory accesses of
// the scope's access type that appear before the barrier are observed, by
// observers in the scope's shareability domain, before accesses that appear
// after it.
//
// On targets without a dedicated barrier instruction this falls back to the
// strongest equivalent available (the CP15 full-system barrier on ARMv6, a
// compiler-only ordering fence elsewhere). The fallback never weakens to a
// removable no-op.
func DMB(scope DMBScope) {
	scope.dmb()
}

// DSB issues a data synchronization barrier with the given scope: execution
// stalls until outstanding memory accesses of the scope's access type are
// complete as observed by the issuing processor. Completion here is a
// statement about this processor's view, not a global program property;
// that reasoning is the caller's.
//
// Degradation on instruction-less targets follows DMB.
func DSB(scope DSBScope) {
	scope.dsb()
}

// ISB flushes the pipeline so that instructions after the barrier are
// refetched, picking up prior context-changing operations (e.g. system
// register writes). SY is the only architected scope.
//
// Degradation on instruction-less targets follows DMB.
func ISB(scope ISBScope) {
	scope.isb()
}
