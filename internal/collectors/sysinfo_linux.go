//go:build linux
// +build linux

package collectors

import "golang.org/x/sys/unix"

// sysinfoTotal is the page-level fallback when /proc/meminfo is missing:
// total memory units times the unit size reported by the kernel.
func sysinfoTotal() (uint64, bool) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, false
	}
	return uint64(si.Totalram) * uint64(si.Unit), true
}

func sysinfoFree() (uint64, bool) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, false
	}
	return uint64(si.Freeram) * uint64(si.Unit), true
}
