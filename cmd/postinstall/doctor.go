package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/desktop-postinstall/internal/doctor"
	"github.com/conn-castle/desktop-postinstall/internal/finalize"
	"github.com/conn-castle/desktop-postinstall/internal/messages"
	"github.com/conn-castle/desktop-postinstall/internal/terminal"
)

var (
	newDoctorSystem = func() doctor.System { return doctor.RealSystem{} }
	isTerminal      = terminal.IsTerminal
)

func newDoctorCmd(shared *sharedFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  prefixArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := loadConfig(shared.configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			dataDir, err := finalize.DataDir(args[0], shared.dataDir)
			if err != nil {
				return err
			}
			skip, err := finalize.ParseSkip(finalize.DisabledSteps(cfg.Steps))
			if err != nil {
				return err
			}
			paths := finalize.DerivePaths(dataDir)
			sys := newDoctorSystem()

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, args[0])

			var results []doctor.Result
			results = append(results, doctor.CheckStaged(sys, cfg.StagedEnv))
			results = append(results, doctor.CheckTools(sys, finalize.Plan(paths, cfg.Tools), skip)...)
			results = append(results, doctor.CheckDirs(sys, paths)...)

			colorize := !color.NoColor && isTerminal(out)
			for _, r := range results {
				printResult(out, r, colorize)
			}
			_, _ = fmt.Fprintln(out)
			if doctor.HasWarnings(results) {
				_, _ = fmt.Fprintln(out, paint(color.FgYellow, messages.DoctorWarnSummary, colorize))
			} else {
				_, _ = fmt.Fprintln(out, paint(color.FgGreen, messages.DoctorSuccessSummary, colorize))
			}
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result, colorize bool) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = paint(color.FgGreen, messages.DoctorStatusOKLabel, colorize)
	default:
		status = paint(color.FgYellow, messages.DoctorStatusWarnLabel, colorize)
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendFmt, r.Recommendation)
	}
}

// paint colors s when colorize is set, regardless of the global color state.
func paint(attr color.Attribute, s string, colorize bool) string {
	if !colorize {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
