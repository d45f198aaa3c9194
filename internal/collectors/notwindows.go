//go:build !windows
// +build !windows

package collectors

import (
	"context"
	"time"
)

// The registry and WMI probes only exist on Windows; elsewhere they report
// no answer so the chains move on.

func (c *Collector) coresFromWMI(context.Context) (int, bool) { return 0, false }

func (c *Collector) gpusFromWMI(context.Context) []string { return nil }

func windowsOSName() (string, bool) { return "", false }

func windowsInstallTime() (time.Time, bool) { return time.Time{}, false }
