// File: hydrogen-config/builder.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for loading configurations
type Builder struct {
	file       string
	doc        *Document
	discovery  DiscoveryOptions
	env        map[string]string
	lookup     EnvLookupFunc
	logger     zerolog.Logger
	overrides  []override
	validators []ValidatorFunc
	debounce   time.Duration
	err        error
}

type override struct {
	path  string
	value any
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		discovery:  DefaultDiscoveryOptions(),
		logger:     zerolog.Nop(),
		validators: make([]ValidatorFunc, 0),
		debounce:   DefaultDebounce,
	}
}

// WithFile sets an explicit configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithDocument uses an already parsed document instead of discovering a file
func (b *Builder) WithDocument(doc *Document) *Builder {
	b.doc = doc
	return b
}

// WithJSON parses data as the configuration document
func (b *Builder) WithJSON(data []byte) *Builder {
	doc, err := ParseDocument(data, FormatJSON)
	if err != nil {
		b.err = err
		return b
	}
	b.doc = doc
	return b
}

// WithSearchPaths replaces the locations searched when no file is named
func (b *Builder) WithSearchPaths(paths ...string) *Builder {
	b.discovery.Paths = paths
	return b
}

// WithDiscovery sets the discovery options
func (b *Builder) WithDiscovery(opts DiscoveryOptions) *Builder {
	b.discovery = opts
	return b
}

// WithEnvironment resolves references and bootstrap variables from vars
// instead of the process environment
func (b *Builder) WithEnvironment(vars map[string]string) *Builder {
	b.env = vars
	b.lookup = MapEnv(vars)
	return b
}

// WithEnvLookup sets a custom variable lookup for references
func (b *Builder) WithEnvLookup(fn EnvLookupFunc) *Builder {
	b.lookup = fn
	return b
}

// WithLogger sets the logger receiving one line per resolved value
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithOverride patches the document before processing. The value is
// inferred like an environment variable, so it counts as a document literal.
func (b *Builder) WithOverride(path, value string) *Builder {
	if _, err := parsePath(path); err != nil {
		b.err = fmt.Errorf("invalid override: %w", err)
		return b
	}
	b.overrides = append(b.overrides, override{path: path, value: InferValue(value)})
	return b
}

// WithOverrideArg parses "Path=Value" as given to --set
func (b *Builder) WithOverrideArg(arg string) *Builder {
	path, value, ok := strings.Cut(arg, "=")
	if !ok {
		b.err = fmt.Errorf("%w: override %q must be Path=Value", ErrInvalidPath, arg)
		return b
	}
	return b.WithOverride(strings.TrimSpace(path), value)
}

// WithValidator adds a validation function that runs after all sections
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithDebounce sets the quiet period the watcher waits before reloading
func (b *Builder) WithDebounce(d time.Duration) *Builder {
	if d >= MinDebounce {
		b.debounce = d
	}
	return b
}

// Build loads the configuration with all specified options
func (b *Builder) Build() (*AppConfig, error) {
	if b.err != nil {
		return nil, b.err
	}

	var found discovered
	if b.doc != nil {
		found = discovered{doc: b.doc.Clone(), path: b.doc.Source()}
		if found.path != "" {
			found.path = absPath(found.path)
		}
	} else {
		var err error
		found, err = discover(b.discovery, b.file, b.bootstrapEnvironment(), b.logger)
		if err != nil {
			return nil, err
		}
	}

	for _, o := range b.overrides {
		if err := found.doc.Set(o.path, o.value); err != nil {
			return nil, fmt.Errorf("failed to apply override %s: %w", o.path, err)
		}
	}

	return load(loadOptions{
		doc:        found.doc,
		configFile: found.path,
		execFile:   executablePath(),
		lookup:     b.lookup,
		logger:     b.logger,
		validators: b.validators,
	})
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *AppConfig {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// bootstrapEnvironment returns the environment handed to the bootstrap
// parser: the builder map, a view of a custom lookup, or nil for the process.
func (b *Builder) bootstrapEnvironment() map[string]string {
	if b.env != nil {
		return b.env
	}
	if b.lookup != nil {
		name := b.discovery.EnvPrefix + "CONFIG"
		environment := make(map[string]string, 1)
		if v, ok := b.lookup(name); ok {
			environment[name] = v
		}
		return environment
	}
	return nil
}

// Load reads the configuration at path, or discovers one when path is empty.
func Load(path string) (*AppConfig, error) {
	return NewBuilder().WithFile(path).Build()
}
