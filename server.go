// FILE: hydrogen-config/server.go
package config

const serverKey = "Server"

// ServerConfig identifies the running instance.
type ServerConfig struct {
	ServerName   string
	LogFile      string
	PayloadKey   string
	StartupDelay int

	// Set by the loader, never read from the document
	ConfigFile string `json:"-"`
	ExecFile   string `json:"-"`
}

func (c *ServerConfig) reset() {
	*c = ServerConfig{
		ServerName:   "Philement/hydrogen",
		LogFile:      "/var/log/hydrogen/hydrogen.log",
		PayloadKey:   EnvRef("PAYLOAD_KEY"),
		StartupDelay: 5,
	}
}

func (c *ServerConfig) fields() []Field {
	return []Field{
		SectionField(serverKey),
		StringField(serverKey+".ServerName", &c.ServerName),
		StringField(serverKey+".LogFile", &c.LogFile),
		SensitiveField(serverKey+".PayloadKey", &c.PayloadKey),
		IntField(serverKey+".StartupDelay", &c.StartupDelay),
	}
}

func (c *ServerConfig) load(p *Processor) error {
	configFile, execFile := c.ConfigFile, c.ExecFile
	c.reset()
	if err := p.Process("Server", c.fields()...); err != nil {
		return err
	}
	c.ConfigFile, c.ExecFile = configFile, execFile

	log := p.Logger("Server")
	for _, line := range c.infoLines() {
		log.Info().Msg(line)
	}
	return nil
}

// infoLines describes the values the loader fills in itself.
func (c *ServerConfig) infoLines() []string {
	return []string{
		Indent(1) + " ConfigFile: " + orNotSet(c.ConfigFile),
		Indent(1) + " ExecFile: " + orNotSet(c.ExecFile),
	}
}

func (c *ServerConfig) validate() error {
	return checkMin("Server", "StartupDelay", c.StartupDelay, 0)
}

func orNotSet(s string) string {
	if s == "" {
		return notSetText
	}
	return s
}
