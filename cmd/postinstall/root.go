package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/desktop-postinstall/internal/config"
	"github.com/conn-castle/desktop-postinstall/internal/finalize"
	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

var (
	finalizeRun       = finalize.Run
	newFinalizeSystem = func() finalize.System { return finalize.RealSystem{} }
)

// sharedFlags are the flags accepted by both the root command and doctor.
type sharedFlags struct {
	configPath string
	dataDir    string
}

func newRootCmd() *cobra.Command {
	var (
		shared  sharedFlags
		dryRun  bool
		verbose bool
		skip    []string
	)
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          prefixArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(shared.configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			skipSet, err := finalize.ParseSkip(append(finalize.DisabledSteps(cfg.Steps), skip...))
			if err != nil {
				return err
			}
			_, err = finalizeRun(cmd.Context(), newFinalizeSystem(), finalize.Options{
				Prefix:    args[0],
				DataDir:   shared.dataDir,
				StagedEnv: cfg.StagedEnv,
				Tools:     cfg.Tools,
				Skip:      skipSet,
				DryRun:    dryRun,
				Verbose:   verbose,
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			})
			return err
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&shared.configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().StringVar(&shared.dataDir, "datadir", "", messages.RootFlagDataDir)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.RootFlagVerbose)
	cmd.Flags().StringArrayVar(&skip, "skip", nil, messages.RootFlagSkip)

	cmd.AddCommand(newDoctorCmd(&shared))
	return cmd
}

// prefixArgs requires exactly one non-empty install prefix.
func prefixArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf(messages.RootArgsFmt, len(args))
	}
	if args[0] == "" {
		return finalize.ErrPrefixRequired
	}
	return nil
}

// loadConfig resolves and loads postinstall.toml from the flag, the
// environment, or the working directory. Only a file the user named can
// fail the run; a broken file picked up from the working directory is
// reported on stderr and replaced by the defaults.
func loadConfig(flagPath string, stderr io.Writer) (*config.Config, error) {
	path, explicit := config.ResolvePath(flagPath, os.Getenv)
	cfg, err := config.Load(path, explicit)
	if err != nil && !explicit {
		_, _ = fmt.Fprintf(stderr, messages.ConfigDefaultIgnoredFmt, err)
		return config.Default(), nil
	}
	return cfg, err
}
