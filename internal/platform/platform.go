// Package platform identifies the operating system family once so the
// collectors can branch on an explicit value instead of re-querying
// runtime.GOOS at every call site.
package platform

import "runtime"

// OS is the operating system family the inspectors know how to probe.
type OS int

const (
	// Other covers every platform without a dedicated probe path.
	Other OS = iota
	Windows
	Linux
)

// Detect maps the running process's GOOS to an OS family.
func Detect() OS {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return Other
	}
}

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}
