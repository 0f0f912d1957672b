// FILE: hydrogen-config/discovery.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// DefaultEnvPrefix prefixes the bootstrap variable, giving HYDROGEN_CONFIG.
const DefaultEnvPrefix = "HYDROGEN_"

// StandardLocations are searched when no path is given.
var StandardLocations = []string{
	"hydrogen.json",
	"/etc/hydrogen/hydrogen.json",
	"/usr/local/etc/hydrogen/hydrogen.json",
}

// DiscoveryOptions configures config file discovery
type DiscoveryOptions struct {
	// Prefix of the bootstrap variable naming the file (<prefix>CONFIG)
	EnvPrefix string

	// Locations to try, in order, when neither the variable nor an explicit path is set
	Paths []string

	// Disabled skips the standard locations
	Disabled bool
}

// DefaultDiscoveryOptions returns the Hydrogen search order
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		EnvPrefix: DefaultEnvPrefix,
		Paths:     append([]string(nil), StandardLocations...),
	}
}

// bootstrapEnv is read before anything else.
type bootstrapEnv struct {
	ConfigPath string `env:"CONFIG"`

	// configSet is true when the variable exists, even if empty
	configSet bool
}

// readBootstrapEnv parses the bootstrap variables. A nil environment means
// the process environment.
func readBootstrapEnv(prefix string, environment map[string]string) (bootstrapEnv, error) {
	var boot bootstrapEnv
	opts := env.Options{Prefix: prefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&boot, opts); err != nil {
		return boot, fmt.Errorf("error getting bootstrap env: %w", err)
	}

	name := prefix + "CONFIG"
	if environment != nil {
		_, boot.configSet = environment[name]
	} else {
		_, boot.configSet = os.LookupEnv(name)
	}
	return boot, nil
}

// discovered is the outcome of locating the document.
type discovered struct {
	doc     *Document
	path    string // absolute path, "" when no file was used
	checked []string
}

// discover locates and parses the configuration file.
// Order: the bootstrap variable, the explicit path, then opts.Paths.
// A named file that is missing or unparsable is fatal, as is an empty
// bootstrap variable; a search location is skipped.
func discover(opts DiscoveryOptions, explicit string, environment map[string]string, logger zerolog.Logger) (discovered, error) {
	log := logger.With().Str("subsystem", "Config").Logger()

	boot, err := readBootstrapEnv(opts.EnvPrefix, environment)
	if err != nil {
		return discovered{}, err
	}

	named := boot.ConfigPath
	via := opts.EnvPrefix + "CONFIG"
	if boot.configSet && named == "" {
		return discovered{}, fmt.Errorf("%w: %s is set but empty", ErrConfigNotFound, via)
	}
	if !boot.configSet {
		named = explicit
		via = "explicit path"
	}
	if named != "" {
		doc, err := ReadDocument(named)
		if err != nil {
			return discovered{}, err
		}
		log.Info().Str("file", named).Str("via", via).Msg("using configuration file " + named)
		return discovered{doc: doc, path: absPath(named), checked: []string{named}}, nil
	}

	var checked []string
	if !opts.Disabled {
		for _, candidate := range opts.Paths {
			checked = append(checked, candidate)
			doc, err := ReadDocument(candidate)
			if err != nil {
				if !errors.Is(err, ErrConfigNotFound) {
					log.Warn().Str("file", candidate).Err(err).Msg("skipping unreadable configuration file")
				}
				continue
			}
			log.Info().Str("file", candidate).Msg("using configuration file " + candidate)
			return discovered{doc: doc, path: absPath(candidate), checked: checked}, nil
		}
	}

	log.Warn().Strs("checked", checked).Msg("no configuration file found, using defaults")
	for _, candidate := range checked {
		log.Info().Str("file", candidate).Msg(Indent(1) + " checked " + candidate)
	}
	return discovered{doc: NewDocument(), checked: checked}, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// executablePath returns the running binary, or ./hydrogen when unknown.
func executablePath() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return "./hydrogen"
}
