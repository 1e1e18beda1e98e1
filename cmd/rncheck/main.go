package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rncheck/internal/cli"
	"rncheck/internal/cli/commands"
	"rncheck/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

// exitUsage is returned for CLI and setup errors, apart from checklist verdicts
const exitUsage = 3

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "rncheck",
		Short:         "Backend checklist for a React Native + Firebase app",
		Long:          `Probe the Metro bundler, run the Firebase connectivity script and inspect the app's service sources. Exits 0 when everything passes, 1 on partial success and 2 on failure.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
}
