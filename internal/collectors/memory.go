package collectors

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Augustwise/hostinspect/internal/platform"
)

// ErrUndetermined reports that every RAM data source failed. There is no
// safe default for memory sizes, so this surfaces as an error instead of
// a degraded value.
var ErrUndetermined = errors.New("cannot be determined")

// TotalRAM returns total physical memory in bytes.
func (c *Collector) TotalRAM() (uint64, error) {
	switch c.OS {
	case platform.Windows:
		vm, err := mem.VirtualMemory()
		if err != nil {
			return 0, fmt.Errorf("total RAM: memory status query: %w", err)
		}
		return vm.Total, nil
	case platform.Linux:
		if v, ok := c.meminfoField("MemTotal"); ok {
			return v, nil
		}
		if v, ok := sysinfoTotal(); ok {
			return v, nil
		}
		return 0, fmt.Errorf("total RAM: %w", ErrUndetermined)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("total RAM: unsupported OS %s: %w", runtime.GOOS, err)
	}
	return vm.Total, nil
}

// FreeRAM returns available physical memory in bytes. On Linux it prefers
// MemAvailable, which accounts for reclaimable caches, over MemFree.
func (c *Collector) FreeRAM() (uint64, error) {
	switch c.OS {
	case platform.Windows:
		vm, err := mem.VirtualMemory()
		if err != nil {
			return 0, fmt.Errorf("free RAM: memory status query: %w", err)
		}
		return vm.Available, nil
	case platform.Linux:
		if v, ok := c.meminfoField("MemAvailable"); ok {
			return v, nil
		}
		if v, ok := c.meminfoField("MemFree"); ok {
			return v, nil
		}
		if v, ok := sysinfoFree(); ok {
			return v, nil
		}
		return 0, fmt.Errorf("free RAM: %w", ErrUndetermined)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("free RAM: unsupported OS %s: %w", runtime.GOOS, err)
	}
	return vm.Available, nil
}

// meminfoField reads one field of /proc/meminfo and converts it to bytes,
// honoring the declared unit suffix. Unrecognized or missing suffixes
// scale as kB, matching the kernel's own convention.
func (c *Collector) meminfoField(name string) (uint64, bool) {
	f, err := os.Open(c.path("proc/meminfo"))
	if err != nil {
		return 0, false
	}
	defer f.Close()

	prefix := name + ":"
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, false
		}
		unit := ""
		if len(fields) >= 3 {
			unit = strings.ToLower(fields[2])
		}
		switch unit {
		case "mb":
			return v * 1024 * 1024, true
		case "gb":
			return v * 1024 * 1024 * 1024, true
		default: // kB
			return v * 1024, true
		}
	}
	return 0, false
}
