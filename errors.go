// FILE: hydrogen-config/errors.go
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrParse is returned when a configuration document cannot be decoded.
	ErrParse = errors.New("failed to parse configuration document")

	// ErrInvalidPath is returned for malformed dotted paths.
	ErrInvalidPath = errors.New("invalid configuration path")

	// ErrInvalidField is returned for field descriptors that cannot be processed
	// (nil destination, unknown kind, bad path).
	ErrInvalidField = errors.New("invalid field descriptor")

	// ErrValidation is the sentinel wrapped by every ValidationError.
	ErrValidation = errors.New("configuration validation failed")

	// ErrUnknownSection is returned by Dump for section names that do not exist.
	ErrUnknownSection = errors.New("unknown configuration section")
)

// ValidationError describes a single out-of-range or inconsistent value.
type ValidationError struct {
	Section string
	Field   string
	Reason  string
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Section, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SectionError reports which section loader failed during Build.
type SectionError struct {
	Letter string
	Name   string
	Err    error
}

// Error implements error.
func (e *SectionError) Error() string {
	return fmt.Sprintf("config section %s. %s: %v", e.Letter, e.Name, e.Err)
}

// Unwrap returns the section failure.
func (e *SectionError) Unwrap() error {
	return e.Err
}

// invalid builds a ValidationError with a formatted reason.
func invalid(section, field, format string, args ...any) error {
	return &ValidationError{
		Section: section,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	}
}
