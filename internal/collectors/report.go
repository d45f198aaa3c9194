package collectors

import (
	"context"
	"time"
)

// Report holds one snapshot of everything the inspector displays.
type Report struct {
	OSName        string
	InstallTime   time.Time
	HasInstall    bool
	PhysicalCores int
	LogicalCores  int
	GPUs          []string
	TotalRAM      uint64
	FreeRAM       uint64
}

// Collect runs every probe once and assembles a Report. The RAM probes
// are the only ones that can fail; everything else degrades to a
// displayable value on its own.
func (c *Collector) Collect(ctx context.Context) (*Report, error) {
	total, err := c.TotalRAM()
	if err != nil {
		return nil, err
	}
	free, err := c.FreeRAM()
	if err != nil {
		return nil, err
	}

	r := &Report{
		OSName:        c.OSName(),
		PhysicalCores: c.PhysicalCores(ctx),
		LogicalCores:  c.LogicalCores(),
		GPUs:          c.GPUNames(ctx),
		TotalRAM:      total,
		FreeRAM:       free,
	}
	r.InstallTime, r.HasInstall = c.InstallTime()
	return r, nil
}
