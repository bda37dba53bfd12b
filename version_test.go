package acle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Under its own test binary acle is the main module, not a dependency, so
// Version reports empty; when it does report, the version is a module
// version string.
func TestVersion(t *testing.T) {
	version, sum := Version()
	if version == "" {
		require.Empty(t, sum, "a checksum without a version is malformed build info")
		return
	}
	require.True(t, strings.HasPrefix(version, "v") || strings.Contains(version, "=>"),
		"unexpected version format %q", version)
}
