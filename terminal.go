// FILE: hydrogen-config/terminal.go
package config

const terminalKey = "Terminal"

// TerminalConfig configures the web terminal.
type TerminalConfig struct {
	Enabled            bool
	WebPath            string
	ShellCommand       string
	MaxSessions        int
	IdleTimeoutSeconds int
}

func (c *TerminalConfig) reset() {
	*c = TerminalConfig{
		Enabled:            true,
		WebPath:            "/terminal",
		ShellCommand:       "/bin/bash",
		MaxSessions:        4,
		IdleTimeoutSeconds: 300,
	}
}

func (c *TerminalConfig) fields() []Field {
	k := terminalKey + "."
	return []Field{
		SectionField(terminalKey),
		BoolField(k+"Enabled", &c.Enabled),
		StringField(k+"WebPath", &c.WebPath),
		StringField(k+"ShellCommand", &c.ShellCommand),
		IntField(k+"MaxSessions", &c.MaxSessions),
		IntField(k+"IdleTimeoutSeconds", &c.IdleTimeoutSeconds),
	}
}

func (c *TerminalConfig) load(p *Processor) error {
	c.reset()
	return p.Process("Terminal", c.fields()...)
}

func (c *TerminalConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	const s = "Terminal"
	return firstError(
		checkSlashPrefix(s, "WebPath", c.WebPath),
		checkNonEmpty(s, "ShellCommand", c.ShellCommand),
		checkMin(s, "MaxSessions", c.MaxSessions, 1),
		checkMin(s, "IdleTimeoutSeconds", c.IdleTimeoutSeconds, 1),
	)
}
