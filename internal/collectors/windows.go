//go:build windows
// +build windows

package collectors

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

type win32Processor struct {
	NumberOfCores uint32
}

type win32VideoController struct {
	Name string
}

// coresFromWMI sums NumberOfCores across all physical processor entries.
func (c *Collector) coresFromWMI(context.Context) (int, bool) {
	var procs []win32Processor
	if err := wmi.Query("SELECT NumberOfCores FROM Win32_Processor", &procs); err != nil {
		return 0, false
	}
	total := 0
	for _, p := range procs {
		total += int(p.NumberOfCores)
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// gpusFromWMI enumerates video controllers through the WMI COM interface,
// ahead of the shell-based fallbacks.
func (c *Collector) gpusFromWMI(context.Context) []string {
	var controllers []win32VideoController
	if err := wmi.Query("SELECT Name FROM Win32_VideoController", &controllers); err != nil {
		return nil
	}
	var names []string
	for _, vc := range controllers {
		names = append(names, vc.Name)
	}
	return names
}

// windowsOSName composes "<product> <release> (build <build>[.<ubr>])"
// from the registry version key. The UBR suffix is appended only when the
// value exists.
func windowsOSName() (string, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	product, _, err := k.GetStringValue("ProductName")
	if err != nil || product == "" {
		return "", false
	}

	build, _, _ := k.GetStringValue("CurrentBuild")

	// The registry still says "Windows 10" on Windows 11 systems; the
	// build number is the reliable discriminator.
	if n, err := strconv.Atoi(build); err == nil && n >= 22000 {
		product = strings.Replace(product, "Windows 10", "Windows 11", 1)
	}

	name := product
	release, _, err := k.GetStringValue("DisplayVersion")
	if err != nil {
		release, _, _ = k.GetStringValue("ReleaseId")
	}
	if release != "" {
		name += " " + release
	}

	if build != "" {
		if ubr, _, err := k.GetIntegerValue("UBR"); err == nil {
			build += "." + strconv.FormatUint(ubr, 10)
		}
		name += " (build " + build + ")"
	}
	return name, true
}

// windowsInstallTime reads the InstallDate registry value, epoch seconds
// in UTC, and converts it to local time.
func windowsInstallTime() (time.Time, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return time.Time{}, false
	}
	defer k.Close()

	seconds, _, err := k.GetIntegerValue("InstallDate")
	if err != nil || seconds == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(seconds), 0), true
}
