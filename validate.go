// FILE: hydrogen-config/validate.go
package config

import (
	"strings"
	"unicode/utf8"
)

// ValidatorFunc checks a fully loaded configuration.
type ValidatorFunc func(cfg *AppConfig) error

const (
	minPort = 1
	maxPort = 65535
)

func checkRange(section, field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return invalid(section, field, "%d out of range [%d, %d]", v, lo, hi)
	}
	return nil
}

func checkMin(section, field string, v, lo int) error {
	if v < lo {
		return invalid(section, field, "%d must be at least %d", v, lo)
	}
	return nil
}

func checkPositive(section, field string, v float64) error {
	if v <= 0 {
		return invalid(section, field, "%g must be greater than 0", v)
	}
	return nil
}

func checkPort(section, field string, port int) error {
	return checkRange(section, field, port, minPort, maxPort)
}

func checkNonEmpty(section, field, s string) error {
	if resolvedText(s) == "" {
		return invalid(section, field, "must not be empty")
	}
	return nil
}

func checkLength(section, field, s string, lo, hi int) error {
	n := utf8.RuneCountInString(resolvedText(s))
	if n < lo || n > hi {
		return invalid(section, field, "length %d out of range [%d, %d]", n, lo, hi)
	}
	return nil
}

func checkSlashPrefix(section, field, s string) error {
	if !strings.HasPrefix(resolvedText(s), "/") {
		return invalid(section, field, "%q must start with /", s)
	}
	return nil
}

// resolvedText treats an unresolved reference as empty.
func resolvedText(s string) string {
	if IsEnvRef(s) {
		return ""
	}
	return s
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
