// Package run wraps subprocess invocation behind a small interface so the
// collectors can be tested against canned command output.
package run

import (
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds every external tool invocation. Probes treat a
// timed-out command as a failed fallback step, never as a fatal error.
const DefaultTimeout = 5 * time.Second

// Runner executes a command and returns its captured stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandRunner is the real Runner backed by os/exec.
type CommandRunner struct{}

// Run executes name with args under ctx and returns stdout. On Windows the
// console window is hidden so shell probes don't flash on screen.
func (CommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	hideWindow(c)
	return c.Output()
}
