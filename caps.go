package acle

// The capability registry is the set of build-time constants describing the
// active target: ISA width, profile, architecture version, and which
// instruction families physically exist. Exactly one caps_*.go file is
// compiled into any given build; its build constraint is the target shape it
// describes. Dispatch never reads these constants at run time; the same
// constraints gate the per-target implementation files directly. The
// constants give tests and diagnostics the vector the build was resolved
// against.
//
// A target description the registry does not recognize must not silently
// select a default. The one expressible contradiction (cortexm without
// GOARCH=arm) is broken in caps_guard.go.

// TargetDescription returns the resolved capability vector as a short
// human-readable string, e.g. "A64 v8" or "A32 v7".
func TargetDescription() string {
	switch {
	case IsA64:
		return "A64 v8"
	case IsMProfile:
		if ArchVersion >= 7 {
			return "M-profile v7-M"
		}
		return "M-profile v6-M"
	case Is32Bit:
		switch ArchVersion {
		case 7:
			return "A32 v7"
		case 6:
			return "A32 v6"
		default:
			return "A32 v5"
		}
	default:
		return "non-ARM host"
	}
}
