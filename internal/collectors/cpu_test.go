package collectors

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Augustwise/hostinspect/internal/platform"
)

// cpuinfoBlocks builds a /proc/cpuinfo with one block per logical
// processor, laid out as packages × cores × threads.
func cpuinfoBlocks(packages, cores, threads int) string {
	var sb strings.Builder
	proc := 0
	for p := 0; p < packages; p++ {
		for c := 0; c < cores; c++ {
			for t := 0; t < threads; t++ {
				fmt.Fprintf(&sb, "processor\t: %d\n", proc)
				fmt.Fprintf(&sb, "model name\t: Test CPU\n")
				fmt.Fprintf(&sb, "physical id\t: %d\n", p)
				fmt.Fprintf(&sb, "core id\t\t: %d\n", c)
				fmt.Fprintf(&sb, "cpu cores\t: %d\n", cores)
				sb.WriteString("\n")
				proc++
			}
		}
	}
	return sb.String()
}

func TestCoresFromCPUInfoPairs(t *testing.T) {
	c := newFixture(t, platform.Linux)
	// 2 packages x 2 cores x 2 threads: 8 logical, 4 physical.
	writeFixture(t, c.Root, "proc/cpuinfo", cpuinfoBlocks(2, 2, 2))

	n, ok := c.coresFromCPUInfoPairs(context.Background())
	if !ok || n != 4 {
		t.Fatalf("coresFromCPUInfoPairs = %d, %v; want 4, true", n, ok)
	}
}

func TestCoresFromCPUInfoPairsNoTrailingBlank(t *testing.T) {
	c := newFixture(t, platform.Linux)
	content := strings.TrimRight(cpuinfoBlocks(1, 2, 1), "\n")
	writeFixture(t, c.Root, "proc/cpuinfo", content)

	n, ok := c.coresFromCPUInfoPairs(context.Background())
	if !ok || n != 2 {
		t.Fatalf("coresFromCPUInfoPairs = %d, %v; want 2, true", n, ok)
	}
}

func TestCoresFromCPUInfoPairsMissingTopologyFields(t *testing.T) {
	c := newFixture(t, platform.Linux)
	// ARM-style cpuinfo without physical id / core id lines.
	writeFixture(t, c.Root, "proc/cpuinfo",
		"processor\t: 0\nmodel name\t: Test CPU\n\nprocessor\t: 1\nmodel name\t: Test CPU\n\n")

	if n, ok := c.coresFromCPUInfoPairs(context.Background()); ok {
		t.Fatalf("expected no answer, got %d", n)
	}
}

func TestCoresFromCPUInfoPairsMissingFile(t *testing.T) {
	c := newFixture(t, platform.Linux)
	if _, ok := c.coresFromCPUInfoPairs(context.Background()); ok {
		t.Fatal("expected no answer without proc/cpuinfo")
	}
}

func TestCoresFromSysfsTopology(t *testing.T) {
	c := newFixture(t, platform.Linux)
	// Two packages, two cores each, hyperthread siblings repeating the
	// same (package, core) pairs.
	cpu := 0
	for pkg := 0; pkg < 2; pkg++ {
		for core := 0; core < 2; core++ {
			for ht := 0; ht < 2; ht++ {
				base := fmt.Sprintf("sys/devices/system/cpu/cpu%d/topology/", cpu)
				writeFixture(t, c.Root, base+"core_id", fmt.Sprintf("%d\n", core))
				writeFixture(t, c.Root, base+"physical_package_id", fmt.Sprintf("%d\n", pkg))
				cpu++
			}
		}
	}

	n, ok := c.coresFromSysfsTopology(context.Background())
	if !ok || n != 4 {
		t.Fatalf("coresFromSysfsTopology = %d, %v; want 4, true", n, ok)
	}
}

func TestCoresFromSysfsTopologyDefaultPackage(t *testing.T) {
	c := newFixture(t, platform.Linux)
	writeFixture(t, c.Root, "sys/devices/system/cpu/cpu0/topology/core_id", "0\n")
	writeFixture(t, c.Root, "sys/devices/system/cpu/cpu1/topology/core_id", "1\n")

	n, ok := c.coresFromSysfsTopology(context.Background())
	if !ok || n != 2 {
		t.Fatalf("coresFromSysfsTopology = %d, %v; want 2, true", n, ok)
	}
}

func TestCoresFromCPUInfoField(t *testing.T) {
	c := newFixture(t, platform.Linux)
	writeFixture(t, c.Root, "proc/cpuinfo", cpuinfoBlocks(1, 6, 2))

	n, ok := c.coresFromCPUInfoField(context.Background())
	if !ok || n != 6 {
		t.Fatalf("coresFromCPUInfoField = %d, %v; want 6, true", n, ok)
	}
}

func TestCoresFromCPUInfoFieldInvalid(t *testing.T) {
	c := newFixture(t, platform.Linux)
	writeFixture(t, c.Root, "proc/cpuinfo", "cpu cores\t: zero\n")
	if n, ok := c.coresFromCPUInfoField(context.Background()); ok {
		t.Fatalf("expected no answer for malformed field, got %d", n)
	}
}

func TestCoresFromPowerShell(t *testing.T) {
	c := newFixture(t, platform.Windows)
	c.Runner = fakeRunner{out: map[string]string{"powershell": "8\r\n"}}

	n, ok := c.coresFromPowerShell(context.Background())
	if !ok || n != 8 {
		t.Fatalf("coresFromPowerShell = %d, %v; want 8, true", n, ok)
	}

	c.Runner = fakeRunner{out: map[string]string{"powershell": "not a number"}}
	if _, ok := c.coresFromPowerShell(context.Background()); ok {
		t.Fatal("expected no answer for malformed output")
	}

	c.Runner = fakeRunner{}
	if _, ok := c.coresFromPowerShell(context.Background()); ok {
		t.Fatal("expected no answer when the tool is missing")
	}
}

func TestLogicalCoresAtLeastOne(t *testing.T) {
	c := New(platform.Detect(), fakeRunner{})
	if n := c.LogicalCores(); n < 1 {
		t.Fatalf("LogicalCores = %d; want >= 1", n)
	}
}

func TestPhysicalCoresAlwaysPositive(t *testing.T) {
	// Even with every external source failing, the chain must land on the
	// logical count.
	c := New(platform.Detect(), fakeRunner{})
	phys := c.PhysicalCores(context.Background())
	if phys < 1 {
		t.Fatalf("PhysicalCores = %d; want >= 1", phys)
	}
	if logical := c.LogicalCores(); phys > logical {
		t.Fatalf("PhysicalCores = %d exceeds LogicalCores = %d", phys, logical)
	}
}

func TestPhysicalNeverExceedsLogicalInFixture(t *testing.T) {
	c := newFixture(t, platform.Linux)
	writeFixture(t, c.Root, "proc/cpuinfo", cpuinfoBlocks(2, 4, 2))

	phys, ok := c.coresFromCPUInfoPairs(context.Background())
	if !ok {
		t.Fatal("expected an answer from the fixture")
	}
	logical := strings.Count(cpuinfoBlocks(2, 4, 2), "processor\t")
	if phys > logical {
		t.Fatalf("physical %d > logical %d", phys, logical)
	}
	if phys != 8 {
		t.Fatalf("physical = %d; want 8", phys)
	}
}
