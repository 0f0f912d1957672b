// FILE: hydrogen-config/dump.go
package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// infoLiner is implemented by sections holding values the loader fills in itself.
type infoLiner interface {
	infoLines() []string
}

// DumpLines renders the resolved configuration, one section header followed
// by one line per field. An empty section name selects every section.
// Secrets are masked and default markers come from the load report.
func DumpLines(cfg *AppConfig, name string) ([]string, error) {
	selected := sections
	if name != "" {
		s, ok := findSection(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
		selected = []section{s}
	}

	var lines []string
	for _, s := range selected {
		target := s.bind(cfg)
		lines = append(lines, SectionHeader(s.letter, s.name))
		for _, f := range target.fields() {
			lines = append(lines, formatLine(dumpResolution(cfg.Report, f), f.Names))
		}
		if extra, ok := target.(infoLiner); ok {
			lines = append(lines, extra.infoLines()...)
		}
	}
	return lines, nil
}

// dumpResolution combines the current value of a field with what the
// report recorded about it. Without a report every value counts as a default.
func dumpResolution(report *Report, f Field) Resolution {
	res, ok := report.Lookup(f.Path)
	if !ok {
		res = Resolution{Path: f.Path, Kind: f.Kind, Source: SourceDefault, Default: true}
	}
	res.Kind = f.Kind
	if f.Kind != KindSection {
		res.Value = f.current()
	}
	if s, isStr := res.Value.(string); isStr {
		if name, isRef := ParseEnvRef(s); isRef {
			res.EnvVar = name
		}
	}
	return res
}

// Dump writes DumpLines to w.
func Dump(cfg *AppConfig, w io.Writer, name string) error {
	lines, err := DumpLines(cfg, name)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// LogDump logs DumpLines under the Config-Current category.
func LogDump(cfg *AppConfig, logger zerolog.Logger, name string) error {
	lines, err := DumpLines(cfg, name)
	if err != nil {
		return err
	}
	log := logger.With().Str("subsystem", "Config-Current").Logger()
	for _, line := range lines {
		log.Info().Msg(line)
	}
	return nil
}
