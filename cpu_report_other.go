//go:build !arm && !arm64

package acle

func runtimeFeatures() RuntimeFeatures {
	return RuntimeFeatures{}
}
