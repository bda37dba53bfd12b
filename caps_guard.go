//go:build cortexm && !arm

package acle

// The cortexm tag selects M-profile encodings within GOARCH=arm; combined
// with any other GOARCH the target description is contradictory. Failing
// with an undefined identifier keeps the diagnostic at build time and names
// the conflict, instead of silently resolving to a default branch.
var _ = errCortexmTagRequiresGOARCHArm
