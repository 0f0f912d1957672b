// FILE: hydrogen-config/print.go
package config

import "errors"

const printKey = "Print"

// Print validation limits.
const (
	MinPriorityGap    = 10
	MinMessageSize    = 128
	MaxMessageSize    = 1024 * 1024
	printSectionLabel = "Print"
)

// PrintConfig configures the print queue and motion control.
type PrintConfig struct {
	Enabled           bool
	MaxQueuedJobs     int
	MaxConcurrentJobs int
	Priorities        PrintPriorities
	Timeouts          PrintTimeouts
	Buffers           PrintBuffers
	Motion            MotionConfig
}

// PrintPriorities order jobs in the queue.
type PrintPriorities struct {
	Default     int
	Emergency   int
	Maintenance int
	System      int
}

// PrintTimeouts are in milliseconds.
type PrintTimeouts struct {
	ShutdownWaitMs         int
	JobProcessingTimeoutMs int
	OperationTimeoutMs     int
}

// PrintBuffers are sizes in bytes.
type PrintBuffers struct {
	JobMessageSize    int
	StatusMessageSize int
}

// MotionConfig limits printer motion.
type MotionConfig struct {
	MaxSpeed       float64
	MaxSpeedXY     float64
	MaxSpeedZ      float64
	MaxSpeedTravel float64
	Acceleration   float64
	ZAcceleration  float64
	EAcceleration  float64
	Jerk           float64
	SmoothMoves    bool
}

func (c *PrintConfig) reset() {
	*c = PrintConfig{
		Enabled:           true,
		MaxQueuedJobs:     100,
		MaxConcurrentJobs: 4,
		Priorities: PrintPriorities{
			Default:     50,
			Emergency:   100,
			Maintenance: 75,
			System:      90,
		},
		Timeouts: PrintTimeouts{
			ShutdownWaitMs:         5000,
			JobProcessingTimeoutMs: 300000,
			OperationTimeoutMs:     1000,
		},
		Buffers: PrintBuffers{
			JobMessageSize:    4096,
			StatusMessageSize: 1024,
		},
		Motion: MotionConfig{
			MaxSpeed:       100,
			MaxSpeedXY:     100,
			MaxSpeedZ:      20,
			MaxSpeedTravel: 150,
			Acceleration:   500,
			ZAcceleration:  100,
			EAcceleration:  250,
			Jerk:           10,
			SmoothMoves:    true,
		},
	}
}

func (c *PrintConfig) fields() []Field {
	k := printKey + "."
	pr := k + "Priorities."
	to := k + "Timeouts."
	bu := k + "Buffers."
	mo := k + "Motion."
	return []Field{
		SectionField(printKey),
		BoolField(k+"Enabled", &c.Enabled),
		IntField(k+"MaxQueuedJobs", &c.MaxQueuedJobs),
		IntField(k+"MaxConcurrentJobs", &c.MaxConcurrentJobs),

		SectionField(k + "Priorities"),
		IntField(pr+"Default", &c.Priorities.Default),
		IntField(pr+"Emergency", &c.Priorities.Emergency),
		IntField(pr+"Maintenance", &c.Priorities.Maintenance),
		IntField(pr+"System", &c.Priorities.System),

		SectionField(k + "Timeouts"),
		IntField(to+"ShutdownWaitMs", &c.Timeouts.ShutdownWaitMs),
		IntField(to+"JobProcessingTimeoutMs", &c.Timeouts.JobProcessingTimeoutMs),
		IntField(to+"OperationTimeoutMs", &c.Timeouts.OperationTimeoutMs),

		SectionField(k + "Buffers"),
		SizeField(bu+"JobMessageSize", &c.Buffers.JobMessageSize),
		SizeField(bu+"StatusMessageSize", &c.Buffers.StatusMessageSize),

		SectionField(k + "Motion"),
		FloatField(mo+"MaxSpeed", &c.Motion.MaxSpeed),
		FloatField(mo+"MaxSpeedXY", &c.Motion.MaxSpeedXY),
		FloatField(mo+"MaxSpeedZ", &c.Motion.MaxSpeedZ),
		FloatField(mo+"MaxSpeedTravel", &c.Motion.MaxSpeedTravel),
		FloatField(mo+"Acceleration", &c.Motion.Acceleration),
		FloatField(mo+"ZAcceleration", &c.Motion.ZAcceleration),
		FloatField(mo+"EAcceleration", &c.Motion.EAcceleration),
		FloatField(mo+"Jerk", &c.Motion.Jerk),
		BoolField(mo+"SmoothMoves", &c.Motion.SmoothMoves),
	}
}

func (c *PrintConfig) load(p *Processor) error {
	c.reset()
	return p.Process("Print", c.fields()...)
}

// validate is a no-op: print settings are checked on demand with ValidatePrint.
func (c *PrintConfig) validate() error {
	return nil
}

// ValidatePrint applies every print rule and joins the failures.
func ValidatePrint(c *PrintConfig) error {
	return errors.Join(
		ValidatePrintPriorities(c.Priorities),
		ValidatePrintTimeouts(c.Timeouts),
		ValidatePrintBuffers(c.Buffers),
		ValidateMotion(c.Motion),
	)
}

// ValidatePrintPriorities requires emergency > system > maintenance > default,
// each at least MinPriorityGap apart.
func ValidatePrintPriorities(pr PrintPriorities) error {
	order := []struct {
		name  string
		value int
	}{
		{"Emergency", pr.Emergency},
		{"System", pr.System},
		{"Maintenance", pr.Maintenance},
		{"Default", pr.Default},
	}
	for i := 0; i+1 < len(order); i++ {
		hi, lo := order[i], order[i+1]
		if hi.value-lo.value < MinPriorityGap {
			return invalid(printSectionLabel, "Priorities."+hi.name,
				"%d must exceed %s %d by at least %d", hi.value, lo.name, lo.value, MinPriorityGap)
		}
	}
	return nil
}

// ValidatePrintTimeouts requires operation < job processing < shutdown wait.
func ValidatePrintTimeouts(t PrintTimeouts) error {
	if t.OperationTimeoutMs >= t.JobProcessingTimeoutMs {
		return invalid(printSectionLabel, "Timeouts.OperationTimeoutMs",
			"%d must be below JobProcessingTimeoutMs %d", t.OperationTimeoutMs, t.JobProcessingTimeoutMs)
	}
	if t.JobProcessingTimeoutMs >= t.ShutdownWaitMs {
		return invalid(printSectionLabel, "Timeouts.JobProcessingTimeoutMs",
			"%d must be below ShutdownWaitMs %d", t.JobProcessingTimeoutMs, t.ShutdownWaitMs)
	}
	return nil
}

// ValidatePrintBuffers requires status <= job message size, both within limits.
func ValidatePrintBuffers(b PrintBuffers) error {
	if err := firstError(
		checkRange(printSectionLabel, "Buffers.JobMessageSize", b.JobMessageSize, MinMessageSize, MaxMessageSize),
		checkRange(printSectionLabel, "Buffers.StatusMessageSize", b.StatusMessageSize, MinMessageSize, MaxMessageSize),
	); err != nil {
		return err
	}
	if b.StatusMessageSize > b.JobMessageSize {
		return invalid(printSectionLabel, "Buffers.StatusMessageSize",
			"%d exceeds JobMessageSize %d", b.StatusMessageSize, b.JobMessageSize)
	}
	return nil
}

// ValidateMotion requires every speed and acceleration to be positive.
func ValidateMotion(m MotionConfig) error {
	const s = printSectionLabel
	return errors.Join(
		checkPositive(s, "Motion.MaxSpeed", m.MaxSpeed),
		checkPositive(s, "Motion.MaxSpeedXY", m.MaxSpeedXY),
		checkPositive(s, "Motion.MaxSpeedZ", m.MaxSpeedZ),
		checkPositive(s, "Motion.MaxSpeedTravel", m.MaxSpeedTravel),
		checkPositive(s, "Motion.Acceleration", m.Acceleration),
		checkPositive(s, "Motion.ZAcceleration", m.ZAcceleration),
		checkPositive(s, "Motion.EAcceleration", m.EAcceleration),
		checkPositive(s, "Motion.Jerk", m.Jerk),
	)
}
