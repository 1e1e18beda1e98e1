package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rncheck/internal/checks"
	"rncheck/internal/cli"
	"rncheck/internal/config"
	"rncheck/internal/domain"
	"rncheck/internal/execution"
	"rncheck/internal/probe"
	"rncheck/internal/storage"
	"rncheck/internal/ui"
)

// ExitError carries a checklist verdict out to main as a process exit status
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("checklist finished with exit code %d", e.Code)
}

// exitFor returns nil for a clean run and an ExitError otherwise
func exitFor(report *domain.Report) error {
	if code := report.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Focused *FocusedCommand
	View    *ViewCommand
	History *HistoryCommand
	List    *ListCommand
}

// NewCommands creates all commands with dependencies. cfg is shared and is
// reloaded from flags before each command runs.
func NewCommands(cfg *config.Config) *Commands {
	viewer := ui.NewReportViewer()

	return &Commands{
		Run:     NewRunCommand(cfg),
		Focused: NewFocusedCommand(cfg),
		View:    NewViewCommand(cfg, viewer),
		History: NewHistoryCommand(cfg),
		List:    NewListCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.Root, "root", "r", "", "Root directory of the React Native app (default /app or $RNCHECK_ROOT)")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file (default <root>/rncheck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every check as a structured entry on stderr")
	rootCmd.PersistentFlags().StringVar(&flags.History, "history", "", "Where run reports are archived: json or mysql")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		if cfg.Flags.NoColor {
			color.NoColor = true
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full backend checklist",
		Long:  "Check the Metro bundler, Firebase connectivity and the app's service sources, then print a summary",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.MetroURL, "metro", "m", "", "Metro bundler base URL (default http://localhost:8081)")
	runCmd.Flags().StringVarP(&flags.Only, "only", "o", "", "Run only categories matching a pattern (e.g. 'metro*' or 'firebase_services,data_services')")
	runCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar instead of per-check lines")
	rootCmd.AddCommand(runCmd)

	// Focused command
	focusedCmd := &cobra.Command{
		Use:   "focused",
		Short: "Run the focused backend checklist",
		Long:  "Run the five quick checks and pass when enough of them succeed",
		RunE:  c.Focused.Execute,
	}
	focusedCmd.Flags().StringVarP(&flags.MetroURL, "metro", "m", "", "Metro bundler base URL (default http://localhost:8081)")
	focusedCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar instead of per-check lines")
	rootCmd.AddCommand(focusedCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the last saved report",
		Long:  "Display the records of the last run in an interactive viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs",
		Long:  "List recent runs from the MySQL history table, or the last saved report when history is json",
		RunE:  c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 0, "Number of runs to list (default 10)")
	rootCmd.AddCommand(historyCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist categories",
		Long:  "List the category keys usable with run --only",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVar(&flags.Focused, "focused", false, "List the focused suite instead of the full one")
	rootCmd.AddCommand(listCmd)

	c.List.focused = &flags.Focused
}

// newSuite wires a Suite against the configured Metro URL and node runner
func newSuite(cfg *config.Config, printer checks.Printer, logger *zap.Logger) *checks.Suite {
	prober := probe.NewProber(cfg.MetroURL, nil)
	runner := execution.NewRunner(logger)
	return checks.NewSuite(cfg, prober, runner, printer, logger)
}

// openStorage returns the configured report store. The returned close
// function is always safe to call.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.History.Driver {
	case "", "json":
		return storage.NewJSONStorage(cfg), func() error { return nil }, nil
	case "mysql":
		st, err := storage.OpenMySQL(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown history driver %q (want json or mysql)", cfg.History.Driver)
}

// saveReport always writes the JSON report, and archives it in MySQL when
// history is mysql.
func saveReport(ctx context.Context, cfg *config.Config, report *domain.Report, logger *zap.Logger) error {
	if err := storage.NewJSONStorage(cfg).Save(report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	if cfg.History.Driver != "mysql" {
		return nil
	}

	st, closeFn, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer closeFn()
	if err := st.Save(report); err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}
	logger.Debug("report archived", zap.String("run_id", report.RunID), zap.String("driver", cfg.History.Driver))
	return nil
}
