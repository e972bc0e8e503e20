// Package finalize refreshes the desktop integration caches of an install prefix.
package finalize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/conn-castle/desktop-postinstall/internal/config"
	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

// Options configures a single finalize run.
type Options struct {
	Prefix    string
	DataDir   string
	StagedEnv string
	Tools     config.Tools
	Skip      map[string]bool
	DryRun    bool
	Verbose   bool
	Stdout    io.Writer
	Stderr    io.Writer
}

// StepResult records what happened to one step. Err is informational only.
type StepResult struct {
	Step     Step
	Skipped  bool
	Ran      bool
	ExitCode int
	Err      error
}

// Report summarizes a run.
type Report struct {
	Paths   Paths
	Staged  bool
	Results []StepResult
}

// Run refreshes the caches for opts.Prefix unless a staged install is
// indicated by a non-empty opts.StagedEnv variable. Tool failures are
// recorded in the report and never returned; the only errors are missing
// inputs.
func Run(ctx context.Context, sys System, opts Options) (Report, error) {
	if sys == nil {
		return Report{}, errors.New(messages.FinalizeSystemRequired)
	}
	if opts.Stdout == nil {
		return Report{}, errors.New(messages.FinalizeWriterRequired)
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = opts.Stdout
	}
	dataDir, err := DataDir(opts.Prefix, opts.DataDir)
	if err != nil {
		return Report{}, err
	}
	report := Report{Paths: DerivePaths(dataDir)}

	stagedEnv := opts.StagedEnv
	if stagedEnv == "" {
		stagedEnv = config.DefaultStagedEnv
	}
	if sys.Getenv(stagedEnv) != "" {
		report.Staged = true
		if opts.Verbose {
			_, _ = fmt.Fprintf(opts.Stdout, messages.FinalizeStagedFmt, stagedEnv)
		}
		return report, nil
	}

	for _, step := range Plan(report.Paths, withDefaults(opts.Tools)) {
		result := StepResult{Step: step}
		if opts.Skip[step.Name] {
			result.Skipped = true
			report.Results = append(report.Results, result)
			if opts.Verbose {
				_, _ = fmt.Fprintf(opts.Stdout, messages.FinalizeStepSkipFmt, step.Name)
			}
			continue
		}

		_, _ = fmt.Fprintln(opts.Stdout, step.Message)
		if opts.DryRun {
			_, _ = fmt.Fprintf(opts.Stdout, messages.FinalizeDryRunFmt, step.CommandLine())
			report.Results = append(report.Results, result)
			continue
		}

		result.Ran = true
		result.Err = sys.Run(ctx, step.Command, step.Args, opts.Stdout, stderr)
		result.ExitCode = exitCode(result.Err)
		report.Results = append(report.Results, result)
		if opts.Verbose {
			reportStep(opts.Stdout, result)
		}
	}
	return report, nil
}

// Invoked returns the steps that were actually started.
func (r Report) Invoked() []Step {
	var steps []Step
	for _, result := range r.Results {
		if result.Ran {
			steps = append(steps, result.Step)
		}
	}
	return steps
}

func withDefaults(tools config.Tools) config.Tools {
	defaults := config.Default().Tools
	if tools.SchemaCompiler == "" {
		tools.SchemaCompiler = defaults.SchemaCompiler
	}
	if tools.IconCache == "" {
		tools.IconCache = defaults.IconCache
	}
	if tools.MimeDatabase == "" {
		tools.MimeDatabase = defaults.MimeDatabase
	}
	return tools
}

// exitCode maps a run error to a process exit status, or -1 when the
// process never produced one.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func reportStep(out io.Writer, result StepResult) {
	line := result.Step.CommandLine()
	switch {
	case result.Err == nil:
		_, _ = fmt.Fprintf(out, messages.FinalizeStepOKFmt, line)
	case result.ExitCode > 0:
		_, _ = fmt.Fprintf(out, messages.FinalizeStepExitFmt, line, result.ExitCode)
	default:
		_, _ = fmt.Fprintf(out, messages.FinalizeStepErrorFmt, line, result.Err)
	}
}
