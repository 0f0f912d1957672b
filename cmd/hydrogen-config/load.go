package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the configuration and log every resolved value",
	Long: `Load the configuration the way the server does at startup.

Each value is logged on its own line with its source. Values kept at their
default are marked with " *" and secrets are masked.

Example:
  hydrogen-config load -c hydrogen.json --set WebServer.Port=8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d values from %s\n",
			len(cfg.Report.Resolutions()), orDefaults(cfg.Server.ConfigFile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func orDefaults(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
