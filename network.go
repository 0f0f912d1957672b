// FILE: hydrogen-config/network.go
package config

import (
	"fmt"
	"sort"
	"strings"
)

const networkKey = "Network"

// Network limits.
const (
	MinInterfaces          = 1
	MaxInterfaces          = 16
	MinIPsPerInterface     = 1
	MaxIPsPerInterface     = 32
	MinInterfaceNameLength = 1
	MaxInterfaceNameLength = 32
	MinIPAddressLength     = 7
	MaxIPAddressLength     = 50
	MinAllocPort           = 1024
	MaxAllocPort           = 65535
)

// NetworkConfig holds interface limits, port allocation and the interface allow list.
type NetworkConfig struct {
	Interfaces     InterfaceLimits
	PortAllocation PortAllocation
	Available      InterfaceSet
}

// InterfaceLimits bound interface discovery.
type InterfaceLimits struct {
	MaxInterfaces          int
	MaxIPsPerInterface     int
	MaxInterfaceNameLength int
	MaxIPAddressLength     int
}

// PortAllocation is the range ports are handed out from.
type PortAllocation struct {
	StartPort     int
	EndPort       int
	ReservedPorts []int
}

// InterfaceSet lists interfaces by name with an enabled flag. It encodes as a JSON object.
type InterfaceSet []InterfaceSetting

// InterfaceSetting enables or disables one interface.
type InterfaceSetting struct {
	Name    string
	Enabled bool
}

// MarshalJSON encodes the set as an object in list order.
func (s InterfaceSet) MarshalJSON() ([]byte, error) {
	entries := make([]orderedEntry, len(s))
	for i, iface := range s {
		entries[i] = orderedEntry{key: iface.Name, value: iface.Enabled}
	}
	return marshalOrdered(entries)
}

func (c *NetworkConfig) reset() {
	*c = NetworkConfig{
		Interfaces: InterfaceLimits{
			MaxInterfaces:          16,
			MaxIPsPerInterface:     8,
			MaxInterfaceNameLength: 16,
			MaxIPAddressLength:     40,
		},
		PortAllocation: PortAllocation{
			StartPort:     1024,
			EndPort:       65535,
			ReservedPorts: []int{},
		},
		Available: InterfaceSet{{Name: "all", Enabled: true}},
	}
}

func (c *NetworkConfig) fields() []Field {
	fields := []Field{
		SectionField(networkKey),
		SectionField(networkKey + ".Interfaces"),
		IntField(networkKey+".Interfaces.MaxInterfaces", &c.Interfaces.MaxInterfaces),
		IntField(networkKey+".Interfaces.MaxIPsPerInterface", &c.Interfaces.MaxIPsPerInterface),
		IntField(networkKey+".Interfaces.MaxInterfaceNameLength", &c.Interfaces.MaxInterfaceNameLength),
		IntField(networkKey+".Interfaces.MaxIPAddressLength", &c.Interfaces.MaxIPAddressLength),
		SectionField(networkKey + ".PortAllocation"),
		IntField(networkKey+".PortAllocation.StartPort", &c.PortAllocation.StartPort),
		IntField(networkKey+".PortAllocation.EndPort", &c.PortAllocation.EndPort),
		IntListField(networkKey+".PortAllocation.ReservedPorts", &c.PortAllocation.ReservedPorts),
		SectionField(networkKey + ".Available"),
	}
	for i := range c.Available {
		iface := &c.Available[i]
		fields = append(fields, BoolField(networkKey+".Available."+iface.Name, &iface.Enabled))
	}
	return fields
}

func (c *NetworkConfig) load(p *Processor) error {
	c.reset()

	// A document allow list replaces the default one
	path := networkKey + ".Available"
	if keys := p.Document().Keys(path); len(keys) > 0 {
		log := p.Logger("Network")
		obj, _ := p.Document().Object(path)
		c.Available = c.Available[:0]
		for _, key := range keys {
			if !isValidKeySegment(key) {
				log.Warn().Str("interface", key).Msg("skipping interface with unusable name")
				continue
			}
			if !isSwitchValue(obj[key]) {
				log.Warn().Str("path", joinPath(path, key)).Msg("skipping interface without a boolean setting")
				continue
			}
			c.Available = append(c.Available, InterfaceSetting{Name: key, Enabled: true})
		}
	}

	return p.Process("Network", c.fields()...)
}

func isSwitchValue(val any) bool {
	if _, ok := val.(bool); ok {
		return true
	}
	s, ok := val.(string)
	return ok && IsEnvRef(s)
}

func (c *NetworkConfig) validate() error {
	const s = "Network"
	lim := c.Interfaces
	pa := c.PortAllocation

	if err := firstError(
		checkRange(s, "Interfaces.MaxInterfaces", lim.MaxInterfaces, MinInterfaces, MaxInterfaces),
		checkRange(s, "Interfaces.MaxIPsPerInterface", lim.MaxIPsPerInterface, MinIPsPerInterface, MaxIPsPerInterface),
		checkRange(s, "Interfaces.MaxInterfaceNameLength", lim.MaxInterfaceNameLength, MinInterfaceNameLength, MaxInterfaceNameLength),
		checkRange(s, "Interfaces.MaxIPAddressLength", lim.MaxIPAddressLength, MinIPAddressLength, MaxIPAddressLength),
		checkRange(s, "PortAllocation.StartPort", pa.StartPort, MinAllocPort, MaxAllocPort),
		checkRange(s, "PortAllocation.EndPort", pa.EndPort, MinAllocPort, MaxAllocPort),
	); err != nil {
		return err
	}
	if pa.StartPort >= pa.EndPort {
		return invalid(s, "PortAllocation", "start port %d must be below end port %d", pa.StartPort, pa.EndPort)
	}

	seen := make(map[int]bool, len(pa.ReservedPorts))
	for i, port := range pa.ReservedPorts {
		field := fmt.Sprintf("PortAllocation.ReservedPorts[%d]", i)
		if port < pa.StartPort || port > pa.EndPort {
			return invalid(s, field, "port %d outside [%d, %d]", port, pa.StartPort, pa.EndPort)
		}
		if seen[port] {
			return invalid(s, field, "port %d reserved twice", port)
		}
		seen[port] = true
	}
	return nil
}

// AddReservedPort reserves a port within the allocation range.
func (c *NetworkConfig) AddReservedPort(port int) error {
	pa := &c.PortAllocation
	if port < pa.StartPort || port > pa.EndPort {
		return invalid("Network", "PortAllocation.ReservedPorts", "port %d outside [%d, %d]", port, pa.StartPort, pa.EndPort)
	}
	for _, reserved := range pa.ReservedPorts {
		if reserved == port {
			return invalid("Network", "PortAllocation.ReservedPorts", "port %d already reserved", port)
		}
	}
	pa.ReservedPorts = append(pa.ReservedPorts, port)
	sort.Ints(pa.ReservedPorts)
	return nil
}

// IsPortReserved reports whether port is reserved. Ports outside the
// allocation range are an error.
func (c *NetworkConfig) IsPortReserved(port int) (bool, error) {
	pa := c.PortAllocation
	if port < pa.StartPort || port > pa.EndPort {
		return false, invalid("Network", "PortAllocation", "port %d outside [%d, %d]", port, pa.StartPort, pa.EndPort)
	}
	for _, reserved := range pa.ReservedPorts {
		if reserved == port {
			return true, nil
		}
	}
	return false, nil
}

// InterfaceEnabled reports whether an interface may be used. An explicit
// entry wins over the "all" entry.
func (c *NetworkConfig) InterfaceEnabled(name string) bool {
	all := false
	for _, iface := range c.Available {
		if iface.Name == name {
			return iface.Enabled
		}
		if strings.EqualFold(iface.Name, "all") {
			all = iface.Enabled
		}
	}
	return all
}
