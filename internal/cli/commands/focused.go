package commands

import (
	"github.com/spf13/cobra"

	"rncheck/internal/config"
	"rncheck/internal/domain"
)

// FocusedCommand handles the focused command
type FocusedCommand struct {
	config *config.Config
}

// NewFocusedCommand creates a new FocusedCommand
func NewFocusedCommand(cfg *config.Config) *FocusedCommand {
	return &FocusedCommand{config: cfg}
}

// Execute runs the command
func (fc *FocusedCommand) Execute(cmd *cobra.Command, args []string) error {
	return runSuite(cmd, fc.config, domain.SuiteFocused, "")
}
