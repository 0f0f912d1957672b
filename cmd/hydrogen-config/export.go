package main

import (
	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the effective configuration as a document",
	Long: `Write the effective configuration, after references, defaults and
overrides are applied, to stdout. Secrets are masked.

Example:
  hydrogen-config export --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("format")
		format, err := config.ParseFormat(name)
		if err != nil {
			return err
		}

		cfg, err := loadQuiet()
		if err != nil {
			return err
		}
		return config.Export(cfg, cmd.OutOrStdout(), format)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "json", "Output format (json, toml or yaml)")
}
