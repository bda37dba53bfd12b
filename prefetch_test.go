package acle

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPrefetchOpCatalogue(t *testing.T) {
	var buf [64]byte
	ops := []PrefetchOp{
		PLDL1KEEP{}, PLDL1STRM{}, PLDL2KEEP{}, PLDL3KEEP{},
		PSTL1KEEP{}, PSTL1STRM{},
	}
	for _, op := range ops {
		op := op
		require.NotPanics(t, func() { Prefetch(op, unsafe.Pointer(&buf[0])) })
	}
}

func TestPrefetchHelpersBoundsChecked(t *testing.T) {
	data := make([]float32, 128)

	PrefetchFloat32(data, 0)
	PrefetchFloat32(data, len(data)-1)
	PrefetchFloat32(data, -1)        // ignored
	PrefetchFloat32(data, len(data)) // ignored
	PrefetchFloat32Write(data, 64)
	PrefetchFloat32Write(data, 1<<20) // ignored

	StreamingPrefetch(data, 0)
	StreamingPrefetch(data, len(data)) // past the end, ignored
	StreamingPrefetchDual(data, data[:16], 0)
	TiledPrefetch(data, 0, 32)
	TiledPrefetch(data, 96, 64) // next tile out of range, ignored
}

// A prefetch is advisory: it must not alter the prefetched memory.
func TestPrefetchHasNoDataEffect(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	PrefetchFloat32(data, 2)
	PrefetchFloat32Write(data, 2)
	require.Equal(t, []float32{1, 2, 3, 4}, data)
}
