package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"postinstall", "--version"}, &out, &out))
	require.Contains(t, out.String(), Version)
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"postinstall", "--version"}, &out, &out, func(int) {
		called = true
	})
	require.False(t, called, "unexpected exit")
}

func TestRunMainMissingPrefix(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := 0
	runMain([]string{"postinstall"}, &stdout, &stderr, func(c int) { code = c })
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "accepts exactly 1 arg (install prefix), received 0")
}

func TestRunMainPropagatesExecuteError(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error { return errors.New("boom") }

	var out bytes.Buffer
	code := 0
	runMain([]string{"postinstall", "/usr"}, &out, &out, func(c int) { code = c })
	require.Equal(t, 1, code)
	require.Equal(t, "boom\n", out.String())
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"postinstall", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	require.Equal(t, "v1.2.3", versionString())

	Commit = "abc123"
	require.Equal(t, "v1.2.3 (commit abc123)", versionString())

	BuildDate = "2026-01-02"
	got := versionString()
	require.True(t, strings.HasPrefix(got, "v1.2.3 ("))
	require.Contains(t, got, "commit abc123, built 2026-01-02")
}
