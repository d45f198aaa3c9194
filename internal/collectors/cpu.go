package collectors

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/Augustwise/hostinspect/internal/platform"
	"github.com/Augustwise/hostinspect/internal/run"
)

// LogicalCores returns the number of schedulable execution units. It never
// fails: an invalid answer from the OS degrades to runtime.NumCPU and
// finally to 1.
func (c *Collector) LogicalCores() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// PhysicalCores returns the number of physical cores, as distinct from
// hyperthreaded logical units. Sources are tried in order and any failure
// moves on to the next; the logical count is the guaranteed final answer.
func (c *Collector) PhysicalCores(ctx context.Context) int {
	providers := []intProvider{c.coresFromLibrary}
	switch c.OS {
	case platform.Windows:
		providers = append(providers, c.coresFromWMI, c.coresFromPowerShell)
	case platform.Linux:
		providers = append(providers,
			c.coresFromCPUInfoPairs,
			c.coresFromSysfsTopology,
			c.coresFromCPUInfoField,
		)
	}
	for _, p := range providers {
		if n, ok := p(ctx); ok && n > 0 {
			return n
		}
	}
	return c.LogicalCores()
}

// coresFromLibrary asks gopsutil for the physical count.
func (c *Collector) coresFromLibrary(ctx context.Context) (int, bool) {
	n, err := cpu.CountsWithContext(ctx, false)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// coresFromPowerShell sums NumberOfCores over all physical processors.
func (c *Collector) coresFromPowerShell(ctx context.Context) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, run.DefaultTimeout)
	defer cancel()

	out, err := c.Runner.Run(ctx, "powershell", "-NoProfile", "-Command",
		"[int](Get-CimInstance Win32_Processor | Measure-Object -Property NumberOfCores -Sum).Sum")
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// coresFromCPUInfoPairs counts distinct (physical id, core id) pairs in
// /proc/cpuinfo. Processor blocks are separated by blank lines.
func (c *Collector) coresFromCPUInfoPairs(context.Context) (int, bool) {
	f, err := os.Open(c.path("proc/cpuinfo"))
	if err != nil {
		return 0, false
	}
	defer f.Close()

	pairs := make(map[[2]string]struct{})
	var physicalID, coreID string
	var havePhys, haveCore bool
	flush := func() {
		if havePhys && haveCore {
			pairs[[2]string{physicalID, coreID}] = struct{}{}
		}
		havePhys, haveCore = false, false
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "physical id") {
			physicalID = valueAfterColon(line)
			havePhys = true
		} else if strings.HasPrefix(line, "core id") {
			coreID = valueAfterColon(line)
			haveCore = true
		}
	}
	flush()

	if sc.Err() != nil || len(pairs) == 0 {
		return 0, false
	}
	return len(pairs), true
}

// coresFromSysfsTopology counts distinct (package id, core id) pairs from
// the sysfs CPU topology tree. A missing physical_package_id file counts
// as package 0.
func (c *Collector) coresFromSysfsTopology(context.Context) (int, bool) {
	coreFiles, err := filepath.Glob(c.path("sys/devices/system/cpu/cpu[0-9]*/topology/core_id"))
	if err != nil {
		return 0, false
	}

	pairs := make(map[[2]string]struct{})
	for _, coreFile := range coreFiles {
		coreVal, err := os.ReadFile(coreFile)
		if err != nil {
			continue
		}
		pkg := "0"
		pkgFile := filepath.Join(filepath.Dir(coreFile), "physical_package_id")
		if pkgVal, err := os.ReadFile(pkgFile); err == nil {
			pkg = strings.TrimSpace(string(pkgVal))
		}
		pairs[[2]string{pkg, strings.TrimSpace(string(coreVal))}] = struct{}{}
	}

	if len(pairs) == 0 {
		return 0, false
	}
	return len(pairs), true
}

// coresFromCPUInfoField reads the "cpu cores" field of the first processor
// block in /proc/cpuinfo.
func (c *Collector) coresFromCPUInfoField(context.Context) (int, bool) {
	f, err := os.Open(c.path("proc/cpuinfo"))
	if err != nil {
		return 0, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(strings.ToLower(line), "cpu cores") {
			continue
		}
		n, err := strconv.Atoi(valueAfterColon(line))
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func valueAfterColon(line string) string {
	if _, after, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(after)
	}
	return ""
}
