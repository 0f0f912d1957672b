// Package logger builds the zerolog.Logger used by the hydrogen-config
// command. The library itself never creates a logger; callers pass one in.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Service is attached to every entry as the "service" field.
const Service = "hydrogen-config"

// Format selects the output encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Options configures New. Zero values are filled from the environment.
type Options struct {
	Level  string `env:"HYDROGEN_CONFIG_LOG_LEVEL" envDefault:"info"`
	Format Format `env:"HYDROGEN_CONFIG_LOG_FORMAT" envDefault:"console"`
	Output io.Writer
}

// OptionsFromEnv reads Options from the environment using caarlos0/env.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("error getting logger env: %w", err)
	}
	return opts, nil
}

// New constructs a logger writing to opts.Output (stderr when nil).
//
// The logger carries:
//   - a "service" field set to Service;
//   - a timestamp on every entry;
//   - the level named by opts.Level.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch opts.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, PartsExclude: []string{zerolog.CallerFieldName}}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", opts.Format)
	}

	return zerolog.New(out).Level(level).With().
		Str("service", Service).
		Timestamp().
		Logger(), nil
}

// Nop returns a logger that discards all output.
// It is intended for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
