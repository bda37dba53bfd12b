// Copyright ©2024 The ACLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acle

import (
	"fmt"
	"runtime/debug"
)

const root = "github.com/LynnColeArt/acle"

// Version returns this module's version and checksum as recorded in the
// calling binary's build info. Both are empty when the binary was built
// without module support, or when acle is the main module rather than a
// dependency (as in its own tests).
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path != root {
			continue
		}
		if r := m.Replace; r != nil {
			return fmt.Sprintf("%s=>%s %s", m.Version, r.Path, r.Version), r.Sum
		}
		return m.Version, m.Sum
	}
	return "", ""
}
