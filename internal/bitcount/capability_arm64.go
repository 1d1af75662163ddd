//go:build arm64

package bitcount

import "golang.org/x/sys/cpu"

func init() {
	// CNT is part of the baseline AdvSIMD unit.
	hasHardwarePopcount = cpu.ARM64.HasASIMD
}
