package acle

// The DBG hint carries a four-bit immediate that the instruction encoding
// requires to be a constant. Go cannot require an integer argument to be
// constant, so the immediate is enforced structurally: the sixteen legal
// values are a closed catalogue of zero-sized types, and no seventeenth
// value is expressible.

// DebugHint is one of the sixteen DBG immediates DBG0 through DBG15.
// Implemented only by the values in this package.
type DebugHint interface {
	dbg()
}

// DBG0 through DBG15 are the architected DBG hint immediates. Their
// meanings are defined by the debug system observing the core, not by the
// architecture.
type (
	DBG0  struct{}
	DBG1  struct{}
	DBG2  struct{}
	DBG3  struct{}
	DBG4  struct{}
	DBG5  struct{}
	DBG6  struct{}
	DBG7  struct{}
	DBG8  struct{}
	DBG9  struct{}
	DBG10 struct{}
	DBG11 struct{}
	DBG12 struct{}
	DBG13 struct{}
	DBG14 struct{}
	DBG15 struct{}
)

// DBG issues a debug hint with the given immediate. Real only on A32 v7;
// A64 removed the instruction, so arm64 and all other targets take the
// fence branch.
func DBG(h DebugHint) {
	h.dbg()
}
