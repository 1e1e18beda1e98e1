package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rncheck/internal/checks"
	"rncheck/internal/config"
	"rncheck/internal/domain"
	"rncheck/internal/logging"
	"rncheck/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{config: cfg}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	return runSuite(cmd, rc.config, domain.SuiteFull, rc.config.Flags.Only)
}

// runSuite runs one suite end to end: records, summary, then persistence.
// The returned error carries the report's exit code.
func runSuite(cmd *cobra.Command, cfg *config.Config, suiteName, only string) error {
	logger, err := logging.New(cfg.Flags.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	formatter := ui.NewFormatter(cmd.OutOrStdout(), cfg.Flags.Progress)
	suite := newSuite(cfg, formatter, logger)

	defs := suite.FullDefinitions()
	if suiteName == domain.SuiteFocused {
		defs = suite.FocusedDefinitions()
	}

	// Create and set progress bar
	if cfg.Flags.Progress {
		selected := checks.FilterKeys(checks.Keys(defs), only)
		suite.SetProgress(ui.NewProgressBar(len(selected), os.Stderr))
	}

	var report *domain.Report
	if suiteName == domain.SuiteFocused {
		report, err = suite.RunFocused(cmd.Context())
	} else {
		report, err = suite.RunFull(cmd.Context(), only)
	}
	if err != nil {
		return err
	}

	formatter.PrintSummary(report)

	if err := saveReport(cmd.Context(), cfg, report, logger); err != nil {
		// A failed save must not hide the verdict
		logger.Error("report not saved", zap.Error(err))
		cmd.PrintErrf("Warning: %v\n", err)
	}

	return exitFor(report)
}
