// FILE: hydrogen-config/mdns_client.go
package config

import "fmt"

const mdnsClientKey = "mDNSClient"

// MDNSClientConfig configures service discovery on the local network.
type MDNSClientConfig struct {
	EnableIPv4     bool
	EnableIPv6     bool
	ScanIntervalMs int
	MaxServices    int
	RetryCount     int
	HealthCheck    MDNSHealthCheck
	ServiceTypes   []MDNSServiceType
}

// MDNSHealthCheck controls health checks of discovered services.
type MDNSHealthCheck struct {
	Enabled    bool
	IntervalMs int
}

// MDNSServiceType is a service type the client looks for.
type MDNSServiceType struct {
	Type        string
	Required    bool
	AutoConnect bool
}

func (c *MDNSClientConfig) reset() {
	*c = MDNSClientConfig{
		EnableIPv4:     true,
		EnableIPv6:     false,
		ScanIntervalMs: 30,
		MaxServices:    100,
		RetryCount:     3,
		HealthCheck: MDNSHealthCheck{
			Enabled:    true,
			IntervalMs: 60,
		},
		ServiceTypes: []MDNSServiceType{},
	}
}

func (c *MDNSClientConfig) fields() []Field {
	k := mdnsClientKey + "."
	fields := []Field{
		SectionField(mdnsClientKey),
		BoolField(k+"EnableIPv4", &c.EnableIPv4),
		BoolField(k+"EnableIPv6", &c.EnableIPv6),
		IntField(k+"ScanIntervalMs", &c.ScanIntervalMs),
		IntField(k+"MaxServices", &c.MaxServices),
		IntField(k+"RetryCount", &c.RetryCount),
		SectionField(k + "HealthCheck"),
		BoolField(k+"HealthCheck.Enabled", &c.HealthCheck.Enabled),
		IntField(k+"HealthCheck.IntervalMs", &c.HealthCheck.IntervalMs),
	}
	for i := range c.ServiceTypes {
		st := &c.ServiceTypes[i]
		base := indexPath(k+"ServiceTypes", i)
		fields = append(fields,
			SectionField(base),
			StringField(base+".Type", &st.Type),
			BoolField(base+".Required", &st.Required),
			BoolField(base+".AutoConnect", &st.AutoConnect),
		)
	}
	return fields
}

func (c *MDNSClientConfig) load(p *Processor) error {
	c.reset()

	path := mdnsClientKey + ".ServiceTypes"
	if types, ok := p.Document().Array(path); ok {
		p.mark(path)
		c.ServiceTypes = make([]MDNSServiceType, len(types))
	}
	return p.Process("mDNSClient", c.fields()...)
}

// Enabled reports whether either IP family is on.
func (c *MDNSClientConfig) Enabled() bool {
	return c.EnableIPv4 || c.EnableIPv6
}

func (c *MDNSClientConfig) validate() error {
	if !c.Enabled() {
		return nil
	}
	const s = "mDNSClient"
	if err := firstError(
		checkMin(s, "ScanIntervalMs", c.ScanIntervalMs, 1),
		checkMin(s, "MaxServices", c.MaxServices, 1),
		checkMin(s, "RetryCount", c.RetryCount, 0),
		checkMin(s, "HealthCheck.IntervalMs", c.HealthCheck.IntervalMs, 1),
	); err != nil {
		return err
	}
	for i, st := range c.ServiceTypes {
		if err := checkNonEmpty(s, fmt.Sprintf("ServiceTypes[%d].Type", i), st.Type); err != nil {
			return err
		}
	}
	return nil
}
