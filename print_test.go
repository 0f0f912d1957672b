// FILE: hydrogen-config/print_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintLoad(t *testing.T) {
	var c PrintConfig
	_, err := loadOne(t, &c, `{"Print": {
		"MaxQueuedJobs": 10,
		"Motion": {"MaxSpeed": 120.5, "Jerk": 8, "Acceleration": "fast"}
	}}`, nil)
	require.NoError(t, err, "the loader itself never rejects print settings")

	assert.Equal(t, 10, c.MaxQueuedJobs)
	assert.Equal(t, 120.5, c.Motion.MaxSpeed)
	assert.Equal(t, 8.0, c.Motion.Jerk, "integers satisfy float fields")
	assert.Equal(t, 500.0, c.Motion.Acceleration)
}

func TestValidatePrintPriorities(t *testing.T) {
	var c PrintConfig
	c.reset()
	assert.NoError(t, ValidatePrintPriorities(c.Priorities))

	pr := c.Priorities
	pr.System = 95
	assert.ErrorIs(t, ValidatePrintPriorities(pr), ErrValidation, "emergency must lead system by 10")

	pr = c.Priorities
	pr.Default = 70
	assert.ErrorIs(t, ValidatePrintPriorities(pr), ErrValidation)
}

func TestValidatePrintTimeouts(t *testing.T) {
	assert.NoError(t, ValidatePrintTimeouts(PrintTimeouts{OperationTimeoutMs: 100, JobProcessingTimeoutMs: 200, ShutdownWaitMs: 300}))
	assert.ErrorIs(t, ValidatePrintTimeouts(PrintTimeouts{OperationTimeoutMs: 200, JobProcessingTimeoutMs: 200, ShutdownWaitMs: 300}), ErrValidation)

	var c PrintConfig
	c.reset()
	assert.ErrorIs(t, ValidatePrintTimeouts(c.Timeouts), ErrValidation,
		"the compiled-in shutdown wait is shorter than the job timeout")
}

func TestValidatePrintBuffers(t *testing.T) {
	assert.NoError(t, ValidatePrintBuffers(PrintBuffers{JobMessageSize: 4096, StatusMessageSize: 1024}))
	assert.ErrorIs(t, ValidatePrintBuffers(PrintBuffers{JobMessageSize: 1024, StatusMessageSize: 4096}), ErrValidation)
	assert.ErrorIs(t, ValidatePrintBuffers(PrintBuffers{JobMessageSize: 64, StatusMessageSize: 64}), ErrValidation)
	assert.ErrorIs(t, ValidatePrintBuffers(PrintBuffers{JobMessageSize: 2 * MaxMessageSize, StatusMessageSize: 1024}), ErrValidation)
}

func TestValidateMotion(t *testing.T) {
	var c PrintConfig
	c.reset()
	assert.NoError(t, ValidateMotion(c.Motion))

	m := c.Motion
	m.MaxSpeedZ = 0
	m.Jerk = -1
	err := ValidateMotion(m)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "MaxSpeedZ")
	assert.Contains(t, err.Error(), "Jerk")
}

func TestValidatePrint(t *testing.T) {
	var c PrintConfig
	c.reset()
	c.Timeouts.ShutdownWaitMs = 600000
	assert.NoError(t, ValidatePrint(&c))

	c.Buffers.StatusMessageSize = 8192
	assert.ErrorIs(t, ValidatePrint(&c), ErrValidation)
}
