// Package collectors probes the host for OS identity, CPU topology, RAM
// and GPU information. Each probe walks an ordered chain of data sources
// and degrades to the next source on any failure; only the RAM probes can
// return an error.
package collectors

import (
	"context"
	"path/filepath"

	"github.com/Augustwise/hostinspect/internal/platform"
	"github.com/Augustwise/hostinspect/internal/run"
)

// Collector holds everything a probe needs: the platform selected once at
// startup, the subprocess runner, and the filesystem root under which the
// kernel pseudo-files live. Root is empty in production; tests point it at
// a fixture tree containing proc/, sys/, etc/ and var/ subdirectories.
type Collector struct {
	OS     platform.OS
	Runner run.Runner
	Root   string
}

// New returns a Collector probing the real host.
func New(os platform.OS, r run.Runner) *Collector {
	return &Collector{OS: os, Runner: r}
}

// path resolves a rooted pseudo-file path like "proc/meminfo".
func (c *Collector) path(rel string) string {
	if c.Root == "" {
		return "/" + rel
	}
	return filepath.Join(c.Root, rel)
}

// intProvider is one step of a count fallback chain. ok reports whether
// the source produced a usable answer; a false result hands control to
// the next provider.
type intProvider func(ctx context.Context) (int, bool)

// nameProvider is one step of a name-list fallback chain. An empty slice
// means the source produced no answer.
type nameProvider func(ctx context.Context) []string
