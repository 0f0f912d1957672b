// FILE: hydrogen-config/mailrelay.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

const mailRelayKey = "MailRelay"

// MaxOutboundServers caps MailRelay.Servers. Extra entries are ignored.
const MaxOutboundServers = 5

// MailRelayConfig configures the SMTP relay.
type MailRelayConfig struct {
	Enabled    bool
	ListenPort int
	Workers    int
	Queue      MailQueue
	Servers    []OutboundServer
}

// MailQueue bounds the queue and its retries.
type MailQueue struct {
	MaxQueueSize      int
	RetryAttempts     int
	RetryDelaySeconds int
}

// OutboundServer is one upstream SMTP server.
type OutboundServer struct {
	Host     string
	Port     string // may hold a reference
	Username string
	Password string
	UseTLS   bool
}

func defaultOutboundServer() OutboundServer {
	return OutboundServer{
		Host:   "localhost",
		Port:   "587",
		UseTLS: true,
	}
}

func (c *MailRelayConfig) reset() {
	*c = MailRelayConfig{
		Enabled:    false,
		ListenPort: 25,
		Workers:    2,
		Queue: MailQueue{
			MaxQueueSize:      1000,
			RetryAttempts:     3,
			RetryDelaySeconds: 300,
		},
		Servers: []OutboundServer{},
	}
}

func (c *MailRelayConfig) fields() []Field {
	k := mailRelayKey + "."
	fields := []Field{
		SectionField(mailRelayKey),
		BoolField(k+"Enabled", &c.Enabled),
		IntField(k+"ListenPort", &c.ListenPort),
		IntField(k+"Workers", &c.Workers),
		SectionField(k + "Queue"),
		IntField(k+"Queue.MaxQueueSize", &c.Queue.MaxQueueSize),
		IntField(k+"Queue.RetryAttempts", &c.Queue.RetryAttempts),
		IntField(k+"Queue.RetryDelaySeconds", &c.Queue.RetryDelaySeconds),
	}
	for i := range c.Servers {
		srv := &c.Servers[i]
		base := indexPath(k+"Servers", i)
		fields = append(fields,
			SectionField(base),
			StringField(base+".Host", &srv.Host),
			StringField(base+".Port", &srv.Port),
			StringField(base+".Username", &srv.Username),
			SensitiveField(base+".Password", &srv.Password),
			BoolField(base+".UseTLS", &srv.UseTLS),
		)
	}
	return fields
}

func (c *MailRelayConfig) load(p *Processor) error {
	c.reset()

	path := mailRelayKey + ".Servers"
	if servers, ok := p.Document().Array(path); ok {
		p.mark(path)
		n := len(servers)
		if n > MaxOutboundServers {
			log := p.Logger("MailRelay")
			log.Warn().Int("count", n).Int("max", MaxOutboundServers).
				Msg(fmt.Sprintf("ignoring %d outbound servers beyond the first %d", n-MaxOutboundServers, MaxOutboundServers))
			n = MaxOutboundServers
		}
		c.Servers = make([]OutboundServer, n)
		for i := range c.Servers {
			c.Servers[i] = defaultOutboundServer()
		}
	}
	return p.Process("MailRelay", c.fields()...)
}

func (c *MailRelayConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	const s = "MailRelay"
	if err := firstError(
		checkPort(s, "ListenPort", c.ListenPort),
		checkMin(s, "Workers", c.Workers, 1),
		checkMin(s, "Queue.MaxQueueSize", c.Queue.MaxQueueSize, 1),
		checkMin(s, "Queue.RetryAttempts", c.Queue.RetryAttempts, 0),
		checkMin(s, "Queue.RetryDelaySeconds", c.Queue.RetryDelaySeconds, 1),
	); err != nil {
		return err
	}
	for i, srv := range c.Servers {
		base := fmt.Sprintf("Servers[%d]", i)
		if err := checkNonEmpty(s, base+".Host", srv.Host); err != nil {
			return err
		}
		// An unresolved reference is checked once the variable is set
		if IsEnvRef(srv.Port) {
			continue
		}
		port, err := strconv.Atoi(strings.TrimSpace(srv.Port))
		if err != nil {
			return invalid(s, base+".Port", "%q is not a port number", srv.Port)
		}
		if err := checkPort(s, base+".Port", port); err != nil {
			return err
		}
	}
	return nil
}
