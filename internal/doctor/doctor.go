// Package doctor reports whether a cache refresh would do useful work.
package doctor

import (
	"os"
	"os/exec"
)

// Status is the outcome of a single check.
type Status string

// Check statuses. There is no failing status: every finding is advisory
// because the refresh itself never fails.
const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
)

// Result is one reported check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// System abstracts the read-only OS operations used by the checks.
type System interface {
	Getenv(key string) string
	LookPath(file string) (string, error)
	Stat(name string) (os.FileInfo, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// LookPath searches PATH for an executable named file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// HasWarnings reports whether any result is not OK.
func HasWarnings(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return true
		}
	}
	return false
}
