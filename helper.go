// FILE: hydrogen-config/helper.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// pathSegment is one dot-separated element of a path, e.g. "Connections[0]".
type pathSegment struct {
	key     string
	indices []int
}

// parsePath splits a dotted path with optional [n] array indices.
func parsePath(path string) ([]pathSegment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(path, ".")
	segments := make([]pathSegment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, path, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func parseSegment(part string) (pathSegment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if !isValidKeySegment(part) {
			return pathSegment{}, fmt.Errorf("invalid segment %q", part)
		}
		return pathSegment{key: part}, nil
	}

	seg := pathSegment{key: part[:open]}
	if !isValidKeySegment(seg.key) {
		return pathSegment{}, fmt.Errorf("invalid segment %q", part)
	}

	rest := part[open:]
	for rest != "" {
		if rest[0] != '[' {
			return pathSegment{}, fmt.Errorf("unexpected %q after index", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return pathSegment{}, fmt.Errorf("unterminated index in %q", part)
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil || idx < 0 {
			return pathSegment{}, fmt.Errorf("bad index %q", rest[1:end])
		}
		seg.indices = append(seg.indices, idx)
		rest = rest[end+1:]
	}
	return seg, nil
}

// isValidKeySegment checks a single object key used in a path.
// Keys come straight from JSON documents, so only the path syntax characters are excluded.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r == '.' || r == '[' || r == ']' || r < 0x20 {
			return false
		}
	}
	return true
}

// joinPath appends an object key to a path prefix.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// indexPath appends an array index to a path.
func indexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// IndentLevel is the depth of a path (its dot count), capped at 5.
func IndentLevel(path string) int {
	level := strings.Count(path, ".")
	if level > maxIndentLevel {
		level = maxIndentLevel
	}
	return level
}

// ShortName returns the last segment of a path, indices included.
func ShortName(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// flattenDocument converts a nested tree into leaf paths.
// Arrays holding objects or arrays are descended with [n]; scalar arrays are leaves.
func flattenDocument(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		flattenValue(flat, joinPath(prefix, key), value)
	}

	return flat
}

func flattenValue(flat map[string]any, path string, value any) {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			flat[path] = v
			return
		}
		for key, sub := range v {
			flattenValue(flat, joinPath(path, key), sub)
		}
	case []any:
		if !hasContainers(v) {
			flat[path] = v
			return
		}
		for i, sub := range v {
			flattenValue(flat, indexPath(path, i), sub)
		}
	default:
		flat[path] = value
	}
}

func hasContainers(items []any) bool {
	for _, item := range items {
		switch item.(type) {
		case map[string]any, []any:
			return true
		}
	}
	return false
}

// setNestedValue sets a value in a nested tree using a path.
// Missing objects are created; array indices must already exist.
// If a key exists but is not an object, it is replaced by a new one.
func setNestedValue(nested map[string]any, path string, value any) error {
	segments, err := parsePath(path)
	if err != nil {
		return err
	}

	var current any = nested
	for i, seg := range segments {
		last := i == len(segments)-1
		obj, ok := current.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q: %s is not an object", ErrInvalidPath, path, seg.key)
		}

		if len(seg.indices) == 0 {
			if last {
				obj[seg.key] = value
				return nil
			}
			next, isMap := obj[seg.key].(map[string]any)
			if !isMap {
				next = make(map[string]any)
				obj[seg.key] = next
			}
			current = next
			continue
		}

		container := obj[seg.key]
		for j, idx := range seg.indices {
			arr, isArr := container.([]any)
			if !isArr || idx >= len(arr) {
				return fmt.Errorf("%w: %q: index %d out of range", ErrInvalidPath, path, idx)
			}
			if last && j == len(seg.indices)-1 {
				arr[idx] = value
				return nil
			}
			container = arr[idx]
		}
		current = container
	}
	return nil
}
