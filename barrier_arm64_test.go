//go:build arm64

package acle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The load-only scopes are v8 operands; this file naming them at all is the
// capability check (a 32-bit build of the package cannot reference them).
func TestLoadOnlyBarrierScopes(t *testing.T) {
	for _, s := range []DMBScope{LD{}, ISHLD{}, NSHLD{}, OSHLD{}} {
		s := s
		require.NotPanics(t, func() { DMB(s) })
	}
	for _, s := range []DSBScope{LD{}, ISHLD{}, NSHLD{}, OSHLD{}} {
		s := s
		require.NotPanics(t, func() { DSB(s) })
	}
}
