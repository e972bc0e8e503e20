package finalize

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// System abstracts the process operations needed to refresh caches.
// This interface is package-local so tests can spy on every invocation
// without touching the host. The doctor package defines its own System.
type System interface {
	Getenv(key string) string
	Run(ctx context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Run starts name with args and waits for it to exit.
func (RealSystem) Run(ctx context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
