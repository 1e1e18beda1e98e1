package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rncheck/internal/config"
	"rncheck/internal/domain"
	"rncheck/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	st, closeFn, err := openStorage(cmd.Context(), vc.config)
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := st.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoReport) {
			color.Yellow("No saved report. Run `rncheck run` first.")
			return nil
		}
		return err
	}

	return vc.viewer.View(report)
}
