// FILE: hydrogen-config/env.go
package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	envRefPrefix = "${env."
	envRefSuffix = "}"
)

// EnvLookupFunc looks up an environment variable, reporting whether it is set.
type EnvLookupFunc func(name string) (string, bool)

// EnvStatus is the outcome of resolving a possible environment reference.
type EnvStatus int

const (
	// EnvNotReference means the input was not of the form ${env.NAME}
	EnvNotReference EnvStatus = iota
	// EnvUnset means the input named a variable that is not set
	EnvUnset
	// EnvResolved means the variable was found and its value inferred
	EnvResolved
)

// String returns the status name.
func (s EnvStatus) String() string {
	switch s {
	case EnvNotReference:
		return "not-reference"
	case EnvUnset:
		return "unset"
	case EnvResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// MapEnv returns an EnvLookupFunc backed by a fixed map.
func MapEnv(vars map[string]string) EnvLookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// ParseEnvRef reports whether s is exactly ${env.NAME} and returns NAME.
func ParseEnvRef(s string) (string, bool) {
	if !strings.HasPrefix(s, envRefPrefix) || !strings.HasSuffix(s, envRefSuffix) {
		return "", false
	}
	name := s[len(envRefPrefix) : len(s)-len(envRefSuffix)]
	if name == "" || strings.ContainsAny(name, "{}$") {
		return "", false
	}
	return name, true
}

// IsEnvRef reports whether s is an environment reference.
func IsEnvRef(s string) bool {
	_, ok := ParseEnvRef(s)
	return ok
}

// EnvRef builds the reference string for name.
func EnvRef(name string) string {
	return envRefPrefix + name + envRefSuffix
}

// ResolveEnv resolves s if it is an environment reference.
// The returned value is nil unless status is EnvResolved, and may still be nil
// for a variable set to the empty string.
func ResolveEnv(s string, lookup EnvLookupFunc) (value any, name string, status EnvStatus) {
	name, ok := ParseEnvRef(s)
	if !ok {
		return nil, "", EnvNotReference
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, set := lookup(name)
	if !set {
		return nil, name, EnvUnset
	}
	return InferValue(raw), name, EnvResolved
}

// lookupRaw returns the untouched variable text for a reference.
func lookupRaw(s string, lookup EnvLookupFunc) (raw string, name string, status EnvStatus) {
	name, ok := ParseEnvRef(s)
	if !ok {
		return "", "", EnvNotReference
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, set := lookup(name)
	if !set {
		return "", name, EnvUnset
	}
	return raw, name, EnvResolved
}

// InferValue converts the text of an environment variable into a typed value.
// Order: empty is nil, true/false (any case) is bool, a strict base-10 integer
// is int64, a strict float is float64, anything else stays a string.
func InferValue(raw string) any {
	if raw == "" {
		return nil
	}
	if strings.EqualFold(raw, "true") {
		return true
	}
	if strings.EqualFold(raw, "false") {
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
