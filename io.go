// FILE: hydrogen-config/io.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// WriteDefaults atomically writes the compiled-in defaults to path.
// The format follows the extension and falls back to JSON.
func WriteDefaults(path string) error {
	format := detectFileFormat(path)
	if format == "" {
		format = FormatJSON
	}
	data, err := encodeConfig(Defaults(), format, false)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// Export writes the effective configuration with every secret masked.
func Export(cfg *AppConfig, w io.Writer, format Format) error {
	data, err := encodeConfig(cfg, format, true)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// encodeConfig converts cfg into a document tree and encodes it.
func encodeConfig(cfg *AppConfig, format Format, mask bool) ([]byte, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	doc, err := ParseDocument(raw, FormatJSON)
	if err != nil {
		return nil, err
	}
	if mask {
		if err := maskSecrets(cfg, doc); err != nil {
			return nil, err
		}
	}
	tree := pruneNulls(doc.Root())

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "    ")
		if err := encoder.Encode(tree); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(tree); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(tree); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return buf.Bytes(), nil
}

// maskSecrets replaces every resolved sensitive value in doc.
// Unresolved references stay as written, they hold no secret.
func maskSecrets(cfg *AppConfig, doc *Document) error {
	for _, s := range sections {
		for _, f := range s.bind(cfg).fields() {
			if f.Kind != KindSensitive {
				continue
			}
			value := *f.Dest.(*string)
			if value == "" || IsEnvRef(value) {
				continue
			}
			if err := doc.Set(f.Path, MaskSecret(value)); err != nil {
				return fmt.Errorf("failed to mask %s: %w", f.Path, err)
			}
		}
	}
	return nil
}

// pruneNulls drops null members, which TOML cannot represent.
func pruneNulls(tree map[string]any) map[string]any {
	for key, val := range tree {
		switch v := val.(type) {
		case nil:
			delete(tree, key)
		case map[string]any:
			pruneNulls(v)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					pruneNulls(m)
				}
			}
		}
	}
	return tree
}

// atomicWriteFile writes data to a temporary file and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
