// FILE: hydrogen-config/format.go
package config

import (
	"strconv"
	"strings"
)

const (
	maxIndentLevel = 5
	indentMark     = "―"
	notSetText     = "(not set)"
	maskVisible    = 5
	maskSuffix     = "..."
	defaultMarker  = " *"
)

// Indent renders the leading marker for a path depth.
func Indent(level int) string {
	if level < 0 {
		level = 0
	}
	if level > maxIndentLevel {
		level = maxIndentLevel
	}
	return strings.Repeat(indentMark, 1+2*level)
}

// MaskSecret shows the first five characters of a secret followed by "...".
// Shorter secrets are shown whole, still followed by "...".
func MaskSecret(s string) string {
	if s == "" {
		return notSetText
	}
	runes := []rune(s)
	if len(runes) <= maskVisible {
		return s + maskSuffix
	}
	return string(runes[:maskVisible]) + maskSuffix
}

// SectionHeader renders a dump header such as "――― A. SERVER".
func SectionHeader(letter, name string) string {
	return strings.Repeat(indentMark, 3) + " " + letter + ". " + strings.ToUpper(name)
}

// FormatValue renders a resolved value for display. Secrets are masked and
// unresolved references never show their text. names labels KindLevel values.
func FormatValue(res Resolution, names []string) string {
	switch res.Kind {
	case KindSection:
		return ""
	case KindString, KindSensitive:
		s, _ := res.Value.(string)
		if s == "" || IsEnvRef(s) {
			return notSetText
		}
		if res.Kind == KindSensitive {
			return MaskSecret(s)
		}
		return s
	case KindLevel:
		i, _ := res.Value.(int)
		if i >= 0 && i < len(names) {
			return names[i]
		}
		return strconv.Itoa(i)
	case KindFloat:
		f, _ := res.Value.(float64)
		return strconv.FormatFloat(f, 'f', -1, 64)
	case KindIntList:
		ints, _ := res.Value.([]int)
		parts := make([]string, len(ints))
		for i, v := range ints {
			parts[i] = strconv.Itoa(v)
		}
		return joinList(parts)
	case KindStringList:
		strs, _ := res.Value.([]string)
		return joinList(strs)
	}
	return scalarString(res.Value)
}

// formatLine renders "<indent> <name>[ {ENV}]: <value>[ *]".
func formatLine(res Resolution, names []string) string {
	var b strings.Builder
	b.WriteString(Indent(IndentLevel(res.Path)))
	b.WriteByte(' ')
	b.WriteString(ShortName(res.Path))
	if res.EnvVar != "" {
		b.WriteString(" {")
		b.WriteString(res.EnvVar)
		b.WriteByte('}')
	}
	if res.Kind != KindSection {
		b.WriteString(": ")
		b.WriteString(FormatValue(res, names))
	}
	if res.Default {
		b.WriteString(defaultMarker)
	}
	return b.String()
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
