package finalize

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// call is one recorded invocation: the command followed by its arguments.
type call []string

// testSystem provides a spying System for unit tests.
//
// Getenv falls back to RealSystem so tests can use t.Setenv. Run never
// reaches the host: it records the call and returns RunFunc's result, or
// errNotMocked when RunFunc is nil.
type testSystem struct {
	RealSystem

	GetenvFunc func(key string) string
	RunFunc    func(name string, args []string, stdout io.Writer, stderr io.Writer) error

	calls []call
}

func (s *testSystem) Getenv(key string) string {
	if s.GetenvFunc != nil {
		return s.GetenvFunc(key)
	}
	return s.RealSystem.Getenv(key)
}

func (s *testSystem) Run(_ context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error {
	s.calls = append(s.calls, append(call{name}, args...))
	if s.RunFunc != nil {
		return s.RunFunc(name, args, stdout, stderr)
	}
	return fmt.Errorf("%w: Run", errNotMocked)
}

func okRun(string, []string, io.Writer, io.Writer) error { return nil }
