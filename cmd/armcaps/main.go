// armcaps prints the capability vector this binary was compiled against and
// the features the host CPU actually reports. The two disagreeing is normal
// (a GOARM=6 binary on a v8 core, an arm64 binary under emulation); the
// point of the tool is to make the disagreement visible.
//
// Options:
//
//	ARMCAPS_DEBUG=1   dump the raw report struct instead of the table
//	-v=1              log the resolved target before printing
package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/davecgh/go-spew/spew"
	"github.com/xyproto/env/v2"
	"k8s.io/klog/v2"

	"github.com/LynnColeArt/acle"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	r := acle.Report()
	klog.V(1).Infof("build-time capability vector resolved to %q on GOARCH=%s", r.Target, r.GOARCH)

	if env.Bool("ARMCAPS_DEBUG") {
		spew.Dump(r)
		return
	}

	fmt.Println(renderReport(r))
}

func renderReport(r acle.CPUReport) string {
	headerStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})

	t.Headers("Capability", "Value", "Resolved")
	t.Row("acle version", moduleVersion(), "build")
	t.Row("Target", r.Target, "build")
	t.Row("GOARCH", r.GOARCH, "build")
	t.Row("Architecture version", strconv.Itoa(r.ArchVersion), "build")
	t.Row("64-bit ISA", onOff(r.IsA64), "build")
	t.Row("M profile", onOff(r.IsMProfile), "build")
	t.Row("Barrier instructions", onOff(r.HasBarrierInsns), "build")
	t.Row("CP15 barrier", onOff(r.HasCP15Barrier), "build")
	t.Row("Hint instructions", onOff(r.HasHintInsns), "build")
	t.Row("SEVL", onOff(r.HasSEVL), "build")
	t.Row("DBG", onOff(r.HasDBG), "build")
	t.Row("Prefetch", onOff(r.HasPrefetch), "build")
	t.Row("NEON", onOff(r.Runtime.HasNEON), "runtime")
	t.Row("CRC32", onOff(r.Runtime.HasCRC32), "runtime")
	t.Row("LSE atomics", onOff(r.Runtime.HasAtomics), "runtime")
	t.Row("SVE", onOff(r.Runtime.HasSVE), "runtime")

	return t.Render()
}

func moduleVersion() string {
	version, sum := acle.Version()
	switch {
	case version == "":
		return "(devel)"
	case sum == "":
		return version
	default:
		return version + " " + sum
	}
}

func onOff(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
