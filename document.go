// FILE: hydrogen-config/document.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a supported document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", name)
	}
}

// Document is a parsed configuration file.
// Values are normalized to map[string]any, []any, bool, int64, float64, string and nil.
type Document struct {
	root   map[string]any
	source string
	format Format
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{root: make(map[string]any), format: FormatJSON}
}

// ReadDocument reads and parses a file, detecting its format.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}
	if format == "" {
		return nil, fmt.Errorf("%w: %s: unable to detect format", ErrParse, path)
	}

	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.source = path
	return doc, nil
}

// ParseDocument decodes data in the given format.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var raw any

	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Keep integers distinct from floats
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrParse, err)
		}
		if _, err := decoder.Token(); err != io.EOF {
			return nil, fmt.Errorf("%w: json: trailing data after document", ErrParse)
		}
	case FormatTOML:
		var tree map[string]any
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrParse, err)
		}
		raw = tree
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrParse, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrParse, format)
	}

	root, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document root must be an object, got %s", ErrParse, kindOf(normalize(raw)))
	}
	return &Document{root: root, format: format}, nil
}

// normalize converts decoder output into the document value set.
func normalize(val any) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, sub := range v {
			out[key] = normalize(sub)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, sub := range v {
			out[fmt.Sprint(key)] = normalize(sub)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, sub := range v {
			out[i] = normalize(sub)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, sub := range v {
			out[i] = normalize(sub)
		}
		return out
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case float32:
		return float64(v)
	case time.Time:
		return v.Format(time.RFC3339)
	}
	if i, ok := asInt64(val); ok {
		return i
	}
	return val
}

// Source is the file the document was read from, or "" when built in memory.
func (d *Document) Source() string {
	return d.source
}

// Format is the encoding the document was parsed from.
func (d *Document) Format() Format {
	return d.format
}

// Root exposes the normalized tree. Callers must not retain it across loads.
func (d *Document) Root() map[string]any {
	return d.root
}

// Lookup returns the value at a dotted path with optional [n] indices.
func (d *Document) Lookup(path string) (any, bool) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, false
	}
	return navigateToPath(d.root, segments)
}

// Has reports whether path exists in the document.
func (d *Document) Has(path string) bool {
	_, ok := d.Lookup(path)
	return ok
}

// Object returns the object at path.
func (d *Document) Object(path string) (map[string]any, bool) {
	val, ok := d.Lookup(path)
	if !ok {
		return nil, false
	}
	obj, ok := val.(map[string]any)
	return obj, ok
}

// Array returns the array at path.
func (d *Document) Array(path string) ([]any, bool) {
	val, ok := d.Lookup(path)
	if !ok {
		return nil, false
	}
	arr, ok := val.([]any)
	return arr, ok
}

// Keys returns the sorted keys of the object at path.
func (d *Document) Keys(path string) []string {
	obj, ok := d.Object(path)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set writes a value into the document, creating intermediate objects.
func (d *Document) Set(path string, value any) error {
	return setNestedValue(d.root, path, normalize(value))
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	root, _ := normalize(d.root).(map[string]any)
	return &Document{root: root, source: d.source, format: d.format}
}

// navigateToPath traverses the tree along parsed segments.
func navigateToPath(nested map[string]any, segments []pathSegment) (any, bool) {
	var current any = nested

	for _, seg := range segments {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := currentMap[seg.key]
		if !exists {
			return nil, false
		}
		current = value

		for _, idx := range seg.indices {
			arr, ok := current.([]any)
			if !ok || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}

	return current, true
}

// detectFileFormat determines the format from the file extension.
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) Format {
	// JSON first, it is the strictest of the three
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML since nearly any text is a valid YAML scalar
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}
