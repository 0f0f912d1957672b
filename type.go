// File: hydrogen-config/type.go
package config

import (
	"math"
	"strconv"
	"strings"
)

// Coercion is strict: document and environment values must already have the
// right shape. Integers never become booleans and floats never become integers.

// asBool accepts only a boolean.
func asBool(val any) (bool, bool) {
	b, ok := val.(bool)
	return b, ok
}

// asInt64 accepts any integer type. Floats are rejected even when integral.
func asInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// asInt converts to the platform int, rejecting overflow.
func asInt(val any) (int, bool) {
	i, ok := asInt64(val)
	if !ok || i > math.MaxInt || i < math.MinInt {
		return 0, false
	}
	return int(i), true
}

// asFloat64 accepts floats and integers.
func asFloat64(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if i, ok := asInt64(val); ok {
		return float64(i), true
	}
	return 0, false
}

// asString accepts only a string.
func asString(val any) (string, bool) {
	s, ok := val.(string)
	return s, ok
}

// asLevel accepts an index into names or a name, compared case-insensitively.
func asLevel(val any, names []string) (int, bool) {
	if i, ok := asInt(val); ok {
		if i >= 0 && i < len(names) {
			return i, true
		}
		return 0, false
	}
	if s, ok := val.(string); ok {
		for i, name := range names {
			if strings.EqualFold(name, s) {
				return i, true
			}
		}
	}
	return 0, false
}

// kindOf names the shape of a value for error log lines.
func kindOf(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float32, float64:
		return "float"
	}
	if _, ok := asInt64(val); ok {
		return "integer"
	}
	return "unknown"
}

// scalarString renders a scalar the way it would be written in a document.
func scalarString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if i, ok := asInt64(val); ok {
		return strconv.FormatInt(i, 10)
	}
	return ""
}
