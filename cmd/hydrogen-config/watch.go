package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the configuration whenever the file changes",
	Long: `Watch the configuration file and reload it after every change.
A failed reload is logged and the previous configuration stays in effect.

Example:
  hydrogen-config watch -c hydrogen.json --dump`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, _ := cmd.Flags().GetBool("dump")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		log, err := newLogger()
		if err != nil {
			return err
		}

		b := newBuilder(log).WithDebounce(debounce)
		if _, err := b.Build(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return b.Watch(ctx, func(cfg *config.AppConfig, err error) {
			if err != nil {
				log.Error().Err(err).Str("subsystem", "Config").Msg("reload failed, keeping previous configuration")
				return
			}
			log.Info().Str("subsystem", "Config").Msg("configuration reloaded")
			if dump {
				if err := config.LogDump(cfg, log, ""); err != nil {
					log.Error().Err(err).Msg("dump failed")
				}
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("dump", false, "Dump the configuration after every reload")
	watchCmd.Flags().Duration("debounce", config.DefaultDebounce, "Quiet period before reloading")
}
