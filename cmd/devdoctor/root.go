package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/devdoctor/pkg/catalog"
	"github.com/vertti/devdoctor/pkg/cmdcheck"
	"github.com/vertti/devdoctor/pkg/doctor"
	"github.com/vertti/devdoctor/pkg/filecheck"
	"github.com/vertti/devdoctor/pkg/gitcheck"
	"github.com/vertti/devdoctor/pkg/jsoncheck"
	"github.com/vertti/devdoctor/pkg/output"
	"github.com/vertti/devdoctor/pkg/probe"
)

// Version is set at build time via ldflags
var Version = "dev"

// ErrChecksFailed is returned when a required check fails.
// The returned error causes main to exit with code 1.
var ErrChecksFailed = errors.New("required checks failed")

var (
	projectDir        string
	validationTimeout time.Duration
	skipValidation    bool
	noColor           bool
	debugLogging      bool
)

var rootCmd = &cobra.Command{
	Use:   "devdoctor",
	Short: "Diagnose the local development environment",
	Long: `devdoctor checks that the tools, project files and validation commands
this project needs are in place, and prints a fix for everything that is not.

It exits 0 when every required check passes and 1 otherwise.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if debugLogging {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
	RunE: runDoctor,
}

func init() {
	rootCmd.Flags().StringVar(&projectDir, "dir", ".", "project root directory")
	rootCmd.Flags().DurationVar(&validationTimeout, "timeout", cmdcheck.DefaultTimeout, "timeout for each validation command")
	rootCmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "skip type-check, lint and test commands")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable debug logging on stderr")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	if validationTimeout <= 0 {
		return fmt.Errorf("invalid --timeout %s: must be positive", validationTimeout)
	}
	info, err := os.Stat(projectDir)
	if err != nil {
		return fmt.Errorf("invalid --dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid --dir %q: not a directory", projectDir)
	}

	out := cmd.OutOrStdout()
	color := !noColor && out == os.Stdout && output.ColorSupported()
	p := output.NewPrinter(out, color)

	runner := &probe.RealRunner{Dir: projectDir}
	checks := catalog.Checks(catalog.Options{
		Dir:               projectDir,
		ValidationTimeout: validationTimeout,
		SkipValidation:    skipValidation,
		Runner:            runner,
		FS:                &filecheck.RealFileSystem{},
		JSONFS:            &jsoncheck.RealFileSystem{},
		Git:               &gitcheck.RealGitRunner{Runner: runner},
	})

	p.PrintHeader("Checking development environment...")
	report := doctor.Run(cmd.Context(), checks, p)

	finalizer := &doctor.Finalizer{QuickStart: catalog.QuickStart, Rerun: cmd.Root().Name()}
	if finalizer.Finalize(report, p) != doctor.ExitOK {
		return ErrChecksFailed
	}
	return nil
}
