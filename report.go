// FILE: hydrogen-config/report.go
package config

import (
	"sort"
	"strings"
)

// Source names where a resolved value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
)

// Resolution records the outcome of processing one field.
type Resolution struct {
	Path    string
	Kind    Kind
	Value   any
	Source  Source
	EnvVar  string // variable named by the reference involved, if any
	Default bool   // the compiled-in default was kept
}

// Report collects resolutions and the document paths consumed by one load.
type Report struct {
	resolutions []Resolution
	index       map[string]int
	marked      map[string]struct{}
	unknown     []string
}

func newReport() *Report {
	return &Report{
		index:  make(map[string]int),
		marked: make(map[string]struct{}),
	}
}

// record stores a resolution. A later resolution of the same path replaces the earlier one.
func (r *Report) record(res Resolution) {
	if i, ok := r.index[res.Path]; ok {
		r.resolutions[i] = res
		return
	}
	r.index[res.Path] = len(r.resolutions)
	r.resolutions = append(r.resolutions, res)
}

// mark records a consumed path without claiming its children.
func (r *Report) mark(path string) {
	r.marked[path] = struct{}{}
}

// Lookup returns the resolution recorded for path.
func (r *Report) Lookup(path string) (Resolution, bool) {
	if r == nil {
		return Resolution{}, false
	}
	i, ok := r.index[path]
	if !ok {
		return Resolution{}, false
	}
	return r.resolutions[i], true
}

// Resolutions returns every recorded resolution in processing order.
func (r *Report) Resolutions() []Resolution {
	if r == nil {
		return nil
	}
	out := make([]Resolution, len(r.resolutions))
	copy(out, r.resolutions)
	return out
}

// FromSource filters resolutions by source.
func (r *Report) FromSource(src Source) []Resolution {
	var out []Resolution
	for _, res := range r.Resolutions() {
		if res.Source == src {
			out = append(out, res)
		}
	}
	return out
}

// Defaults returns the resolutions that kept their compiled-in default.
func (r *Report) Defaults() []Resolution {
	var out []Resolution
	for _, res := range r.Resolutions() {
		if res.Default {
			out = append(out, res)
		}
	}
	return out
}

// Unknown returns document paths no loader read, sorted.
func (r *Report) Unknown() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.unknown))
	copy(out, r.unknown)
	return out
}

// Known reports whether a document leaf path was read by some loader.
// A leaf is known when a field resolved or a loader marked it, or when it is
// an element of (or holds the elements of) an array resolved per element.
func (r *Report) Known(path string) bool {
	if _, ok := r.index[path]; ok {
		return true
	}
	if _, ok := r.marked[path]; ok {
		return true
	}
	for field := range r.index {
		if strings.HasPrefix(path, field) && path[len(field)] == '[' {
			return true
		}
		if strings.HasPrefix(field, path) && field[len(path)] == '[' {
			return true
		}
	}
	return false
}

// collectUnknown compares the document leaves against consumed paths.
func (r *Report) collectUnknown(doc *Document) []string {
	r.unknown = r.unknown[:0]
	for path := range flattenDocument(doc.Root(), "") {
		if !r.Known(path) {
			r.unknown = append(r.unknown, path)
		}
	}
	sort.Strings(r.unknown)
	return r.Unknown()
}
