package commands

import (
	"github.com/spf13/cobra"

	"rncheck/internal/checks"
	"rncheck/internal/config"
	"rncheck/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	focused *bool
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suite := checks.NewSuite(lc.config, nil, nil, nil, nil)
	defs := suite.FullDefinitions()
	if lc.focused != nil && *lc.focused {
		defs = suite.FocusedDefinitions()
	}

	keys := make([]string, len(defs))
	titles := make([]string, len(defs))
	for i, def := range defs {
		keys[i] = def.Key
		titles[i] = def.Title
	}

	ui.NewFormatter(cmd.OutOrStdout(), false).PrintCategoryList(keys, titles)
	return nil
}
