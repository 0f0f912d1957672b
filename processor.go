// FILE: hydrogen-config/processor.go
package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Processor resolves field tables against one document.
// A Processor belongs to a single load and is not safe for concurrent use.
type Processor struct {
	doc    *Document
	logger zerolog.Logger
	lookup EnvLookupFunc
	report *Report
}

// NewProcessor creates a processor. A nil doc is treated as empty and a nil
// lookup falls back to the process environment.
func NewProcessor(doc *Document, logger zerolog.Logger, lookup EnvLookupFunc) *Processor {
	if doc == nil {
		doc = NewDocument()
	}
	return &Processor{
		doc:    doc,
		logger: logger,
		lookup: lookup,
		report: newReport(),
	}
}

// Document returns the document being processed.
func (p *Processor) Document() *Document {
	return p.doc
}

// Report returns the resolutions recorded so far.
func (p *Processor) Report() *Report {
	return p.report
}

// Logger returns the logger for a subsystem category.
func (p *Processor) Logger(subsystem string) zerolog.Logger {
	return p.logger.With().Str("subsystem", "Config-"+subsystem).Logger()
}

// Process resolves each field in order and logs one line per field.
// It fails only on a broken descriptor, leaving later fields untouched.
func (p *Processor) Process(subsystem string, fields ...Field) error {
	log := p.Logger(subsystem)

	for _, f := range fields {
		if err := f.check(); err != nil {
			return err
		}

		res, problem := p.resolve(f)
		p.report.record(res)

		ev := log.Info()
		if problem != "" {
			ev = log.Error()
		}
		ev = ev.Str("path", res.Path).
			Str("source", string(res.Source)).
			Bool("default", res.Default)
		if res.EnvVar != "" {
			ev = ev.Str("env", res.EnvVar)
		}
		if problem != "" {
			ev = ev.Str("error", problem)
		}
		ev.Msg(formatLine(res, f.Names))
	}
	return nil
}

// mark records that a loader read path while shaping its section.
func (p *Processor) mark(path string) {
	p.report.mark(path)
}

func (p *Processor) resolve(f Field) (Resolution, string) {
	switch f.Kind {
	case KindString, KindSensitive:
		return p.resolveString(f)
	case KindSection:
		return p.resolveSection(f)
	case KindIntList, KindStringList:
		return p.resolveList(f)
	default:
		return p.resolveTyped(f)
	}
}

// resolveTyped handles bool, int, size, float and level fields.
func (p *Processor) resolveTyped(f Field) (Resolution, string) {
	res := Resolution{Path: f.Path, Kind: f.Kind}
	var problem string

	if val, ok := p.doc.Lookup(f.Path); ok && val != nil {
		if s, isStr := val.(string); isStr && IsEnvRef(s) {
			envVal, name, status := ResolveEnv(s, p.lookup)
			res.EnvVar = name
			switch status {
			case EnvResolved:
				if f.assign(envVal) {
					res.Value = f.current()
					res.Source = SourceEnv
					return res, ""
				}
				problem = fmt.Sprintf("environment variable %s holds %s, expected %s", name, kindOf(envVal), f.Kind)
			case EnvUnset:
				problem = fmt.Sprintf("environment variable %s is not set", name)
			}
		} else if f.assign(val) {
			res.Value = f.current()
			res.Source = SourceFile
			return res, ""
		} else {
			problem = fmt.Sprintf("document holds %s, expected %s", kindOf(val), f.Kind)
		}
	}

	res.Value = f.current()
	res.Source = SourceDefault
	res.Default = true
	return res, problem
}

// resolveString handles string and sensitive fields. The destination may
// itself hold a reference, which takes priority over the document.
func (p *Processor) resolveString(f Field) (Resolution, string) {
	dest := f.Dest.(*string)
	res := Resolution{Path: f.Path, Kind: f.Kind}
	var problem string

	if raw, name, status := lookupRaw(*dest, p.lookup); status != EnvNotReference {
		res.EnvVar = name
		if status == EnvResolved {
			*dest = raw
			res.Value = raw
			res.Source = SourceEnv
			return res, ""
		}
	}

	if val, ok := p.doc.Lookup(f.Path); ok && val != nil {
		s, isStr := val.(string)
		switch {
		case !isStr:
			problem = fmt.Sprintf("document holds %s, expected %s", kindOf(val), f.Kind)
		case IsEnvRef(s):
			raw, name, status := lookupRaw(s, p.lookup)
			res.EnvVar = name
			if status == EnvResolved {
				*dest = raw
				res.Value = raw
				res.Source = SourceEnv
				return res, ""
			}
			problem = fmt.Sprintf("environment variable %s is not set", name)
		default:
			*dest = s
			res.Value = s
			res.Source = SourceFile
			// A literal replaces a default reference
			res.EnvVar = ""
			return res, ""
		}
	}

	if name, isRef := ParseEnvRef(*dest); isRef && problem == "" {
		problem = fmt.Sprintf("environment variable %s is not set", name)
	}

	res.Value = *dest
	res.Source = SourceDefault
	res.Default = true
	return res, problem
}

// resolveSection records whether an object section is present.
func (p *Processor) resolveSection(f Field) (Resolution, string) {
	res := Resolution{Path: f.Path, Kind: f.Kind}

	val, ok := p.doc.Lookup(f.Path)
	if !ok {
		res.Source = SourceDefault
		res.Default = true
		return res, ""
	}
	if _, isObj := val.(map[string]any); !isObj {
		res.Source = SourceDefault
		res.Default = true
		return res, fmt.Sprintf("document holds %s, expected object", kindOf(val))
	}
	res.Source = SourceFile
	return res, ""
}

// resolveList decodes an array field. On failure the default list is kept.
func (p *Processor) resolveList(f Field) (Resolution, string) {
	res := Resolution{Path: f.Path, Kind: f.Kind}

	// Decode into a scratch value so a failed decode leaves the default intact
	var problem string
	switch dest := f.Dest.(type) {
	case *[]int:
		var decoded []int
		found, err := p.doc.Decode(f.Path, &decoded, p.lookup)
		if err != nil {
			problem = err.Error()
		} else if found {
			*dest = decoded
			res.Value = f.current()
			res.Source = SourceFile
			return res, ""
		}
	case *[]string:
		var decoded []string
		found, err := p.doc.Decode(f.Path, &decoded, p.lookup)
		if err != nil {
			problem = err.Error()
		} else if found {
			*dest = decoded
			res.Value = f.current()
			res.Source = SourceFile
			return res, ""
		}
	}

	res.Value = f.current()
	res.Source = SourceDefault
	res.Default = true
	return res, problem
}

// assign stores val in the destination when it has the right shape.
func (f Field) assign(val any) bool {
	switch f.Kind {
	case KindBool:
		b, ok := asBool(val)
		if ok {
			*f.Dest.(*bool) = b
		}
		return ok
	case KindInt:
		i, ok := asInt(val)
		if ok {
			*f.Dest.(*int) = i
		}
		return ok
	case KindSize:
		i, ok := asInt(val)
		if !ok || i < 0 {
			return false
		}
		*f.Dest.(*int) = i
		return true
	case KindFloat:
		v, ok := asFloat64(val)
		if ok {
			*f.Dest.(*float64) = v
		}
		return ok
	case KindLevel:
		i, ok := asLevel(val, f.Names)
		if ok {
			*f.Dest.(*int) = i
		}
		return ok
	}
	return false
}
