// FILE: hydrogen-config/webserver.go
package config

const webServerKey = "WebServer"

// WebServerConfig configures the HTTP server.
type WebServerConfig struct {
	EnableIPv4          bool
	EnableIPv6          bool
	Port                int
	WebRoot             string
	UploadPath          string
	UploadDir           string
	MaxUploadSize       int
	ThreadPoolSize      int
	MaxConnections      int
	MaxConnectionsPerIP int
	ConnectionTimeout   int
}

func (c *WebServerConfig) reset() {
	*c = WebServerConfig{
		EnableIPv4:          true,
		EnableIPv6:          false,
		Port:                5000,
		WebRoot:             "/tmp/hydrogen",
		UploadPath:          "/upload",
		UploadDir:           "/tmp/hydrogen",
		MaxUploadSize:       100 * 1024 * 1024,
		ThreadPoolSize:      20,
		MaxConnections:      200,
		MaxConnectionsPerIP: 100,
		ConnectionTimeout:   60,
	}
}

func (c *WebServerConfig) fields() []Field {
	k := webServerKey + "."
	return []Field{
		SectionField(webServerKey),
		BoolField(k+"EnableIPv4", &c.EnableIPv4),
		BoolField(k+"EnableIPv6", &c.EnableIPv6),
		IntField(k+"Port", &c.Port),
		StringField(k+"WebRoot", &c.WebRoot),
		StringField(k+"UploadPath", &c.UploadPath),
		StringField(k+"UploadDir", &c.UploadDir),
		SizeField(k+"MaxUploadSize", &c.MaxUploadSize),
		IntField(k+"ThreadPoolSize", &c.ThreadPoolSize),
		IntField(k+"MaxConnections", &c.MaxConnections),
		IntField(k+"MaxConnectionsPerIP", &c.MaxConnectionsPerIP),
		IntField(k+"ConnectionTimeout", &c.ConnectionTimeout),
	}
}

func (c *WebServerConfig) load(p *Processor) error {
	c.reset()
	return p.Process("WebServer", c.fields()...)
}

func (c *WebServerConfig) validate() error {
	const s = "WebServer"
	if err := firstError(
		checkPort(s, "Port", c.Port),
		checkMin(s, "MaxUploadSize", c.MaxUploadSize, 1),
		checkMin(s, "ThreadPoolSize", c.ThreadPoolSize, 1),
		checkMin(s, "MaxConnections", c.MaxConnections, 1),
		checkMin(s, "MaxConnectionsPerIP", c.MaxConnectionsPerIP, 1),
		checkMin(s, "ConnectionTimeout", c.ConnectionTimeout, 1),
	); err != nil {
		return err
	}
	if c.MaxConnectionsPerIP > c.MaxConnections {
		return invalid(s, "MaxConnectionsPerIP", "%d exceeds MaxConnections %d", c.MaxConnectionsPerIP, c.MaxConnections)
	}
	return nil
}
