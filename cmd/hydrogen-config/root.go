package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	config "github.com/philement/hydrogen-config"
	"github.com/philement/hydrogen-config/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "hydrogen-config",
	Short: "Load and inspect Hydrogen server configuration",
	Long: `Load a Hydrogen server configuration file, resolve environment
references and defaults, and validate every section in order.`,
	SilenceUsage: true,
}

var (
	configPath string
	overrides  []string
	logLevel   string
	logFormat  string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Configuration file (default: discovered)")
	flags.StringArrayVar(&overrides, "set", nil, "Override a value, as Path=Value (repeatable)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "Log format (console or json)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger applies the flags on top of the environment.
func newLogger() (zerolog.Logger, error) {
	opts, err := logger.OptionsFromEnv()
	if err != nil {
		return zerolog.Nop(), err
	}
	if logLevel != "" {
		opts.Level = logLevel
	}
	if logFormat != "" {
		opts.Format = logger.Format(logFormat)
	}
	opts.Output = rootCmd.ErrOrStderr()
	return logger.New(opts)
}

// newBuilder prepares a Builder from the persistent flags.
func newBuilder(log zerolog.Logger) *config.Builder {
	b := config.NewBuilder().
		WithFile(configPath).
		WithLogger(log)
	for _, arg := range overrides {
		b = b.WithOverrideArg(arg)
	}
	return b
}

// loadConfig builds the configuration with the given logger.
func loadConfig(log zerolog.Logger) (*config.AppConfig, error) {
	cfg, err := newBuilder(log).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// quietLogger only logs warnings and errors unless --log-level is given,
// for commands that print their own output.
func quietLogger() (zerolog.Logger, error) {
	log, err := newLogger()
	if err != nil {
		return log, err
	}
	if logLevel == "" {
		log = log.Level(zerolog.WarnLevel)
	}
	return log, nil
}

func loadQuiet() (*config.AppConfig, error) {
	log, err := quietLogger()
	if err != nil {
		return nil, err
	}
	return loadConfig(log)
}
