package cmd

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/kanbananza/landing/internal/app"
	"github.com/kanbananza/landing/internal/export"
)

var (
	exportOut   string
	exportClean bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the landing page and its assets as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}

		exporter, err := do.Invoke[*export.Exporter](app.NewInjector(cfg))
		if err != nil {
			return fmt.Errorf("build exporter: %w", err)
		}

		written, err := exporter.Export(cmd.Context(), exportOut, export.Options{Clean: exportClean})
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().BoolVar(&exportClean, "clean", false, "remove the output directory first")
	rootCmd.AddCommand(exportCmd)
}
