// FILE: hydrogen-config/loader.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// sectionConfig is implemented by every section struct.
type sectionConfig interface {
	// reset restores compiled-in defaults
	reset()
	// load resets, shapes variable-length parts from the document and
	// processes the field table
	load(p *Processor) error
	// fields is the field table for the current shape
	fields() []Field
	validate() error
}

// section describes one step of the load sequence.
type section struct {
	letter string
	name   string // log category and dump header
	key    string // document key
	bind   func(cfg *AppConfig) sectionConfig
}

// sections are loaded in this order.
var sections = []section{
	{"A", "Server", serverKey, func(c *AppConfig) sectionConfig { return &c.Server }},
	{"B", "Network", networkKey, func(c *AppConfig) sectionConfig { return &c.Network }},
	{"C", "Databases", databasesKey, func(c *AppConfig) sectionConfig { return &c.Databases }},
	{"D", "Logging", loggingKey, func(c *AppConfig) sectionConfig { return &c.Logging }},
	{"E", "WebServer", webServerKey, func(c *AppConfig) sectionConfig { return &c.WebServer }},
	{"F", "API", apiKey, func(c *AppConfig) sectionConfig { return &c.API }},
	{"G", "Swagger", swaggerKey, func(c *AppConfig) sectionConfig { return &c.Swagger }},
	{"H", "WebSocket", webSocketKey, func(c *AppConfig) sectionConfig { return &c.WebSocket }},
	{"I", "Terminal", terminalKey, func(c *AppConfig) sectionConfig { return &c.Terminal }},
	{"J", "mDNSServer", mdnsServerKey, func(c *AppConfig) sectionConfig { return &c.MDNSServer }},
	{"K", "mDNSClient", mdnsClientKey, func(c *AppConfig) sectionConfig { return &c.MDNSClient }},
	{"L", "MailRelay", mailRelayKey, func(c *AppConfig) sectionConfig { return &c.MailRelay }},
	{"M", "Print", printKey, func(c *AppConfig) sectionConfig { return &c.Print }},
	{"N", "Resources", resourcesKey, func(c *AppConfig) sectionConfig { return &c.Resources }},
	{"O", "OIDC", oidcKey, func(c *AppConfig) sectionConfig { return &c.OIDC }},
	{"P", "Notify", notifyKey, func(c *AppConfig) sectionConfig { return &c.Notify }},
}

// SectionNames lists the sections in load order.
func SectionNames() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

// findSection matches a section by name, document key or letter, ignoring case.
func findSection(name string) (section, bool) {
	for _, s := range sections {
		if strings.EqualFold(s.name, name) || strings.EqualFold(s.key, name) || strings.EqualFold(s.letter, name) {
			return s, true
		}
	}
	return section{}, false
}

// loadOptions carries everything one load needs.
type loadOptions struct {
	doc        *Document
	configFile string
	execFile   string
	lookup     EnvLookupFunc
	logger     zerolog.Logger
	validators []ValidatorFunc
}

// load runs every section against one parsed document.
// The first failing section aborts the load.
func load(opts loadOptions) (*AppConfig, error) {
	cfg := &AppConfig{}
	cfg.Server.ConfigFile = opts.configFile
	cfg.Server.ExecFile = opts.execFile

	p := NewProcessor(opts.doc, opts.logger, opts.lookup)
	for _, s := range sections {
		if err := loadSection(p, cfg, s); err != nil {
			return nil, err
		}
	}

	log := opts.logger.With().Str("subsystem", "Config").Logger()
	for _, path := range p.report.collectUnknown(p.doc) {
		log.Warn().Str("path", path).Msg("unknown configuration key " + path)
	}
	cfg.Report = p.report

	// Run validators
	for _, validator := range opts.validators {
		if err := validator(cfg); err != nil {
			if errors.Is(err, ErrValidation) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	log.Info().Int("values", len(p.report.resolutions)).Msg("configuration loaded")
	return cfg, nil
}

func loadSection(p *Processor, cfg *AppConfig, s section) error {
	target := s.bind(cfg)
	log := p.Logger(s.name)
	log.Info().Msg(SectionHeader(s.letter, s.name))

	if err := target.load(p); err != nil {
		target.reset()
		return &SectionError{Letter: s.letter, Name: s.name, Err: err}
	}
	if err := target.validate(); err != nil {
		target.reset()
		log.Error().Err(err).Msg("section validation failed")
		return &SectionError{Letter: s.letter, Name: s.name, Err: err}
	}
	return nil
}
