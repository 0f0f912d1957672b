// FILE: hydrogen-config/config.go
package config

import (
	"bytes"
	"encoding/json"
)

// AppConfig is the resolved configuration of one Hydrogen instance.
// An AppConfig is never modified after it has been returned by a load.
type AppConfig struct {
	Server     ServerConfig     `json:"Server"`
	Network    NetworkConfig    `json:"Network"`
	Databases  DatabaseConfig   `json:"Databases"`
	Logging    LoggingConfig    `json:"Logging"`
	WebServer  WebServerConfig  `json:"WebServer"`
	API        APIConfig        `json:"API"`
	Swagger    SwaggerConfig    `json:"Swagger"`
	WebSocket  WebSocketConfig  `json:"WebSocketServer"`
	Terminal   TerminalConfig   `json:"Terminal"`
	MDNSServer MDNSServerConfig `json:"mDNSServer"`
	MDNSClient MDNSClientConfig `json:"mDNSClient"`
	MailRelay  MailRelayConfig  `json:"MailRelay"`
	Print      PrintConfig      `json:"Print"`
	Resources  ResourcesConfig  `json:"Resources"`
	OIDC       OIDCConfig       `json:"OIDC"`
	Notify     NotifyConfig     `json:"Notify"`

	// Report records where every value came from. Nil for Defaults().
	Report *Report `json:"-"`
}

// Defaults returns a configuration holding only compiled-in defaults.
// References such as ${env.JWT_SECRET} are left unresolved.
func Defaults() *AppConfig {
	cfg := &AppConfig{}
	for _, s := range sections {
		s.bind(cfg).reset()
	}
	return cfg
}

// orderedEntry is one key of a JSON object whose key order matters.
type orderedEntry struct {
	key   string
	value any
}

// marshalOrdered encodes entries as a JSON object preserving their order.
func marshalOrdered(entries []orderedEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
