package collectors

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/Augustwise/hostinspect/internal/platform"
)

// OSName returns a display name for the operating system. On Windows it is
// composed from the registry version key, on Linux from the os-release
// PRETTY_NAME; everything else gets a generic platform string. It never
// fails.
func (c *Collector) OSName() string {
	switch c.OS {
	case platform.Windows:
		if name, ok := windowsOSName(); ok {
			return name
		}
	case platform.Linux:
		if name, ok := c.prettyName(); ok {
			return name
		}
	}
	return genericPlatform()
}

// prettyName reads the PRETTY_NAME field of /etc/os-release.
func (c *Collector) prettyName() (string, bool) {
	f, err := os.Open(c.path("etc/os-release"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "PRETTY_NAME=") {
			continue
		}
		name := strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), `" `)
		if name != "" {
			return name, true
		}
	}
	return "", false
}

// genericPlatform builds a best-effort platform string from gopsutil's
// host info, degrading to GOOS/GOARCH when even that is unavailable.
func genericPlatform() string {
	if hi, err := host.Info(); err == nil && hi.Platform != "" {
		s := hi.Platform
		if hi.PlatformVersion != "" {
			s += " " + hi.PlatformVersion
		}
		if hi.KernelVersion != "" {
			s += fmt.Sprintf(" (%s)", hi.KernelVersion)
		}
		return s
	}
	return runtime.GOOS + "/" + runtime.GOARCH
}

// InstallTime reports when the operating system was installed. ok is false
// when no source could answer; that is a normal result, not a failure.
//
// Linux has no authoritative install record, so the probe takes the
// earliest modification time among a fixed list of installer artifacts
// that tend to survive from initial provisioning. The answer is a
// best-effort proxy, not a guaranteed timestamp.
func (c *Collector) InstallTime() (time.Time, bool) {
	switch c.OS {
	case platform.Windows:
		return windowsInstallTime()
	case platform.Linux:
		return c.linuxInstallTime()
	}
	return time.Time{}, false
}

var installArtifacts = []string{
	"var/log/installer/syslog",
	"var/log/anaconda/anaconda.log",
	"var/log/installer",
	"etc",
}

func (c *Collector) linuxInstallTime() (time.Time, bool) {
	var earliest time.Time
	for _, rel := range installArtifacts {
		fi, err := os.Stat(c.path(rel))
		if err != nil {
			continue
		}
		if mt := fi.ModTime(); earliest.IsZero() || mt.Before(earliest) {
			earliest = mt
		}
	}
	return earliest, !earliest.IsZero()
}
