package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanbananza/landing/internal/app"
	"github.com/kanbananza/landing/internal/config"
	"github.com/kanbananza/landing/internal/reporting"
	"github.com/kanbananza/landing/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(func(c *config.Config) {
			if serveAddr != "" {
				c.Addr = serveAddr
			}
		})
		if err != nil {
			return err
		}

		flush, err := reporting.Init(reporting.Options{
			DSN:         cfg.SentryDSN,
			Environment: cfg.Env,
			Release:     "kanbananza@" + version,
		})
		if err != nil {
			return err
		}
		defer flush()

		s, err := server.New(app.NewInjector(cfg))
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		s.RegisterRoutes()

		ctx, stop := server.WithShutdownSignals(cmd.Context())
		defer stop()

		return s.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides APP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
