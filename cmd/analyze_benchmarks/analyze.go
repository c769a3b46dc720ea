package main

import (
	"fmt"
	"os"
	"path/filepath"

	"benchgate/internal/benchmark"
	"benchgate/internal/config"
	clierrors "benchgate/internal/errors"
	"benchgate/internal/report"
	"benchgate/internal/requirements"
	"benchgate/internal/telemetry"
	"benchgate/internal/ui"

	"github.com/spf13/cobra"
)

// runAnalyze parses the results file, validates the requirements and writes
// the report to stdout and next to the input file.
func runAnalyze(cmd *cobra.Command, cfg *config.Config, path string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return clierrors.NewNotFoundError(path)
		}
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	store := benchmark.Parse(string(data))
	telemetry.LogDebug("Parsed benchmark output", "path", path, "results", store.Len())

	validator := requirements.NewValidator(out).WithMarker(ui.NewConsole(out, cfg.NoColor))
	validator.Projects = cfg.Projects
	validator.Baseline = cfg.Baseline
	validator.Requirements = cfg.Requirements

	summary := validator.Validate(store)
	text := report.Generate(summary.Outcomes, store)

	fmt.Fprintln(out, text)

	reportPath := filepath.Join(filepath.Dir(path), report.FileName)
	if err := os.WriteFile(reportPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if cfg.JSONFile != "" {
		if err := store.WriteJSON(cfg.JSONFile); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		telemetry.LogDebug("Saved results as JSON", "path", cfg.JSONFile)
	}

	if cfg.MetricsFile != "" {
		m := report.NewMetrics()
		m.Observe(store, summary)
		if err := m.WriteFile(cfg.MetricsFile); err != nil {
			telemetry.LogError("Failed to export metrics", err, "path", cfg.MetricsFile)
			return err
		}
		telemetry.LogDebug("Saved metrics", "path", cfg.MetricsFile)
	}

	fmt.Fprintf(out, "\nReport saved to: %s\n", reportPath)
	return nil
}
