package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show where each configuration value came from",
	Long: `Show every resolved value with its source: the file, an environment
variable, or the compiled-in default. Secrets are masked.

Example:
  hydrogen-config sources
  hydrogen-config sources --defaults`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		onlyDefaults, _ := cmd.Flags().GetBool("defaults")

		cfg, err := loadQuiet()
		if err != nil {
			return err
		}

		resolutions := cfg.Report.Resolutions()
		if onlyDefaults {
			resolutions = cfg.Report.Defaults()
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tSOURCE\tENV\tVALUE")
		for _, res := range resolutions {
			if res.Kind == config.KindSection {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Path, res.Source, orDash(res.EnvVar), config.FormatValue(res, cfg.Logging.Levels))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.Flags().Bool("defaults", false, "Only list values kept at their default")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
