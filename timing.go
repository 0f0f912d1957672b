// FILE: hydrogen-config/timing.go
package config

import "time"

// Core timing constants for file watching.
const (
	MinDebounce     = 10 * time.Millisecond  // Floor for the change coalescence period
	DefaultDebounce = 500 * time.Millisecond // File change coalescence period
)
