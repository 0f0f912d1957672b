// FILE: hydrogen-config/mdns_server.go
package config

import "fmt"

const mdnsServerKey = "mDNSServer"

// MDNSServerConfig configures service announcement.
type MDNSServerConfig struct {
	EnableIPv4   bool
	EnableIPv6   bool
	DeviceId     string
	FriendlyName string
	Model        string
	Manufacturer string
	Version      string
	Services     []MDNSService
}

// MDNSService is one announced service.
type MDNSService struct {
	Name       string
	Type       string
	Port       int
	TxtRecords []string
}

func defaultMDNSService() MDNSService {
	return MDNSService{
		Name:       "hydrogen",
		Type:       "_http._tcp.local",
		Port:       80,
		TxtRecords: []string{},
	}
}

func (c *MDNSServerConfig) reset() {
	*c = MDNSServerConfig{
		DeviceId:     "hydrogen",
		FriendlyName: "Hydrogen Server",
		Model:        "Hydrogen",
		Manufacturer: "Philement",
		Version:      "0.1.0",
		Services:     []MDNSService{},
	}
}

func (c *MDNSServerConfig) fields() []Field {
	k := mdnsServerKey + "."
	fields := []Field{
		SectionField(mdnsServerKey),
		BoolField(k+"EnableIPv4", &c.EnableIPv4),
		BoolField(k+"EnableIPv6", &c.EnableIPv6),
		StringField(k+"DeviceId", &c.DeviceId),
		StringField(k+"FriendlyName", &c.FriendlyName),
		StringField(k+"Model", &c.Model),
		StringField(k+"Manufacturer", &c.Manufacturer),
		StringField(k+"Version", &c.Version),
	}
	for i := range c.Services {
		svc := &c.Services[i]
		base := indexPath(k+"Services", i)
		fields = append(fields,
			SectionField(base),
			StringField(base+".Name", &svc.Name),
			StringField(base+".Type", &svc.Type),
			IntField(base+".Port", &svc.Port),
			StringListField(base+".TxtRecords", &svc.TxtRecords),
		)
	}
	return fields
}

func (c *MDNSServerConfig) load(p *Processor) error {
	c.reset()

	path := mdnsServerKey + ".Services"
	if services, ok := p.Document().Array(path); ok {
		p.mark(path)
		c.Services = make([]MDNSService, len(services))
		for i := range c.Services {
			c.Services[i] = defaultMDNSService()
		}
	}
	return p.Process("mDNSServer", c.fields()...)
}

// Enabled reports whether either IP family is on.
func (c *MDNSServerConfig) Enabled() bool {
	return c.EnableIPv4 || c.EnableIPv6
}

func (c *MDNSServerConfig) validate() error {
	if !c.Enabled() {
		return nil
	}
	const s = "mDNSServer"
	if err := firstError(
		checkNonEmpty(s, "DeviceId", c.DeviceId),
		checkNonEmpty(s, "FriendlyName", c.FriendlyName),
		checkNonEmpty(s, "Model", c.Model),
		checkNonEmpty(s, "Manufacturer", c.Manufacturer),
		checkNonEmpty(s, "Version", c.Version),
	); err != nil {
		return err
	}
	for i, svc := range c.Services {
		base := fmt.Sprintf("Services[%d]", i)
		if err := firstError(
			checkNonEmpty(s, base+".Name", svc.Name),
			checkNonEmpty(s, base+".Type", svc.Type),
			checkPort(s, base+".Port", svc.Port),
		); err != nil {
			return err
		}
	}
	return nil
}
