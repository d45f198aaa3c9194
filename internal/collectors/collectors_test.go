package collectors

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Augustwise/hostinspect/internal/platform"
)

// fakeRunner serves canned stdout keyed by command name; anything else
// fails as a missing tool would.
type fakeRunner struct {
	out map[string]string
}

func (f fakeRunner) Run(_ context.Context, name string, _ ...string) ([]byte, error) {
	out, ok := f.out[name]
	if !ok {
		return nil, errors.New("exec: " + name + ": not found")
	}
	return []byte(out), nil
}

// newFixture returns a Collector rooted at a temp directory mimicking the
// Linux pseudo-filesystem layout.
func newFixture(t *testing.T, os platform.OS) *Collector {
	t.Helper()
	return &Collector{OS: os, Runner: fakeRunner{}, Root: t.TempDir()}
}

func writeFixture(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}
