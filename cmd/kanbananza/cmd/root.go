package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanbananza/landing/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "kanbananza",
	Short: "Kanbananza landing site",
	Long: `kanbananza serves the public Kanbananza landing page.

Available commands:
  serve      Start the HTTP server
  export     Write the landing page as static files
  version    Print the version

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and applies flag overrides through apply.
func loadConfig(apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if apply != nil {
		apply(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
