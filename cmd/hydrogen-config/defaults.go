package main

import (
	"fmt"

	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <path>",
	Short: "Write the compiled-in defaults to a file",
	Long: `Write the compiled-in defaults to a file. The format follows the
extension (.json, .toml, .yaml) and falls back to JSON.

Example:
  hydrogen-config defaults /etc/hydrogen/hydrogen.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefaults(args[0]); err != nil {
			return fmt.Errorf("failed to write defaults: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote defaults to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
