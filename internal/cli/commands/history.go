package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rncheck/internal/config"
	"rncheck/internal/domain"
	"rncheck/internal/storage"
	"rncheck/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config *config.Config
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config) *HistoryCommand {
	return &HistoryCommand{config: cfg}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	formatter := ui.NewFormatter(cmd.OutOrStdout(), false)

	st, closeFn, err := openStorage(cmd.Context(), hc.config)
	if err != nil {
		return err
	}
	defer closeFn()

	if history, ok := st.(storage.History); ok {
		rows, err := history.Recent(cmd.Context(), hc.config.History.Limit)
		if err != nil {
			return err
		}
		formatter.PrintHistory(rows)
		return nil
	}

	// The JSON store only keeps the last run
	report, err := st.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoReport) {
			color.Yellow("No runs recorded yet")
			return nil
		}
		return err
	}
	formatter.PrintHistory([]storage.RunSummary{storage.Summarize(report)})
	return nil
}
