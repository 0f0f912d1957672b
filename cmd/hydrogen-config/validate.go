package main

import (
	"fmt"

	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load and validate the configuration, then list any keys in the
document that no section recognizes.

With --strict the print queue checks run as well.

Example:
  hydrogen-config validate -c hydrogen.json --strict`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		log, err := quietLogger()
		if err != nil {
			return err
		}
		b := newBuilder(log)
		if strict {
			b = b.WithValidator(func(cfg *config.AppConfig) error {
				return config.ValidatePrint(&cfg.Print)
			})
		}
		cfg, err := b.Build()
		if err != nil {
			return fmt.Errorf("configuration is invalid: %w", err)
		}

		out := cmd.OutOrStdout()
		unknown := cfg.Report.Unknown()
		for _, path := range unknown {
			fmt.Fprintf(out, "unknown key: %s\n", path)
		}
		fmt.Fprintf(out, "Configuration is valid (%d unknown keys)\n", len(unknown))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Also run the print queue checks")
}
