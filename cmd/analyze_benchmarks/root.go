package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"benchgate/internal/config"
	clierrors "benchgate/internal/errors"
	"benchgate/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var exit = os.Exit

const usageLine = "Usage: analyze_benchmarks benchmark_results.txt"

// newRootCmd builds the analyze_benchmarks command.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "analyze_benchmarks <benchmark_results.txt>",
		Short: "Validate benchmark overhead requirements from Criterion output",
		Long: `Parses Criterion benchmark output, checks that Level 1 stays within 110%
and Level 2 within 125% of the Level 0 baseline for every project, prints a
report and saves it as benchmark_analysis.txt next to the input file.

Failed requirements are reported but do not change the exit status.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one results file, got %d", clierrors.ErrUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
			telemetry.LogDebug("Loaded configuration", "config", cfg.String())

			return runAnalyze(cmd, cfg, args[0])
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", clierrors.ErrUsage, err)
	})

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file with projects, baseline and requirements (YAML)")
	addFlags(cmd.Flags())

	return cmd
}

func addFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	fs.Bool("no-color", false, "Disable colored status markers")
	fs.String("log-file", "", "Also write logs to this file")
	fs.String("metrics-file", "", "Write results and overhead checks in Prometheus text format to this file")
	fs.String("json", "", "Write all parsed results as JSON to this file")
}

// Execute runs the root command with the process arguments and exits with
// its status. This is called by main.main().
func Execute() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and reports errors the way the tool always has:
// usage and missing-file problems on stdout, anything else on stderr.
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, clierrors.ErrUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stdout, usageLine)
	case clierrors.IsNotFound(err):
		fmt.Fprintf(stdout, "Error: %v\n", err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return clierrors.ExitCode(err)
}
