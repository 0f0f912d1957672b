// FILE: hydrogen-config/websocket.go
package config

const webSocketKey = "WebSocketServer"

// WebSocketConfig configures the WebSocket server.
type WebSocketConfig struct {
	EnableIPv4         bool
	EnableIPv6         bool
	LibLogLevel        int
	Port               int
	MaxMessageSize     int
	Protocol           string
	Key                string
	ConnectionTimeouts WebSocketTimeouts
}

// WebSocketTimeouts are in milliseconds.
type WebSocketTimeouts struct {
	ShutdownWaitSeconds int
	ServiceLoopDelayMs  int
	ConnectionCleanupMs int
	ExitWaitSeconds     int
}

func (c *WebSocketConfig) reset() {
	*c = WebSocketConfig{
		LibLogLevel:    2,
		Port:           5001,
		MaxMessageSize: 2048,
		Protocol:       "hydrogen",
		Key:            EnvRef("WEBSOCKET_KEY"),
		ConnectionTimeouts: WebSocketTimeouts{
			ShutdownWaitSeconds: 2,
			ServiceLoopDelayMs:  50,
			ConnectionCleanupMs: 500,
			ExitWaitSeconds:     3,
		},
	}
}

func (c *WebSocketConfig) fields() []Field {
	k := webSocketKey + "."
	t := k + "ConnectionTimeouts."
	return []Field{
		SectionField(webSocketKey),
		BoolField(k+"EnableIPv4", &c.EnableIPv4),
		BoolField(k+"EnableIPv6", &c.EnableIPv6),
		IntField(k+"LibLogLevel", &c.LibLogLevel),
		IntField(k+"Port", &c.Port),
		SizeField(k+"MaxMessageSize", &c.MaxMessageSize),
		StringField(k+"Protocol", &c.Protocol),
		SensitiveField(k+"Key", &c.Key),
		SectionField(k + "ConnectionTimeouts"),
		IntField(t+"ShutdownWaitSeconds", &c.ConnectionTimeouts.ShutdownWaitSeconds),
		IntField(t+"ServiceLoopDelayMs", &c.ConnectionTimeouts.ServiceLoopDelayMs),
		IntField(t+"ConnectionCleanupMs", &c.ConnectionTimeouts.ConnectionCleanupMs),
		IntField(t+"ExitWaitSeconds", &c.ConnectionTimeouts.ExitWaitSeconds),
	}
}

func (c *WebSocketConfig) load(p *Processor) error {
	c.reset()
	return p.Process("WebSocket", c.fields()...)
}

// Enabled reports whether either IP family is on.
func (c *WebSocketConfig) Enabled() bool {
	return c.EnableIPv4 || c.EnableIPv6
}

func (c *WebSocketConfig) validate() error {
	if !c.Enabled() {
		return nil
	}
	const s = "WebSocket"
	return firstError(
		checkPort(s, "Port", c.Port),
		checkNonEmpty(s, "Protocol", c.Protocol),
		checkMin(s, "MaxMessageSize", c.MaxMessageSize, 1),
	)
}
