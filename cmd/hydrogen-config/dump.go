package main

import (
	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [section]",
	Short: "Print the resolved configuration",
	Long: `Print the resolved configuration, one line per value, in the same
layout as the load log. A section may be named by name, key or letter.

Example:
  hydrogen-config dump
  hydrogen-config dump E`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}

		cfg, err := loadQuiet()
		if err != nil {
			return err
		}
		return config.Dump(cfg, cmd.OutOrStdout(), name)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
