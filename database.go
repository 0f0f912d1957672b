// FILE: hydrogen-config/database.go
package config

import "fmt"

const databasesKey = "Databases"

// MaxDatabaseConnections caps the connection list. Extra entries are ignored.
const MaxDatabaseConnections = 5

// DatabaseConfig holds the worker count and the named connections.
type DatabaseConfig struct {
	DefaultWorkers int
	Connections    []DatabaseConnection
}

// DatabaseConnection describes one database the server may open.
type DatabaseConnection struct {
	Name           string
	Enabled        bool
	Type           string
	Database       string
	Host           string
	Port           string // may hold a reference
	User           string
	Pass           string
	Workers        int
	BootstrapQuery string
}

// defaultConnection is used when the document does not list connections.
func defaultConnection() DatabaseConnection {
	return DatabaseConnection{
		Name:     "Acuranzo",
		Enabled:  true,
		Type:     EnvRef("ACURANZO_DB_TYPE"),
		Database: EnvRef("ACURANZO_DATABASE"),
		Host:     EnvRef("ACURANZO_DB_HOST"),
		Port:     EnvRef("ACURANZO_DB_PORT"),
		User:     EnvRef("ACURANZO_DB_USER"),
		Pass:     EnvRef("ACURANZO_DB_PASS"),
		Workers:  1,
	}
}

// blankConnection is the starting point for a connection listed in the document.
func blankConnection() DatabaseConnection {
	return DatabaseConnection{
		Enabled: true,
		Type:    "postgresql",
		Host:    "localhost",
		Port:    "5432",
		Workers: 1,
	}
}

func (c *DatabaseConfig) reset() {
	*c = DatabaseConfig{
		DefaultWorkers: 1,
		Connections:    []DatabaseConnection{defaultConnection()},
	}
}

func (c *DatabaseConfig) fields() []Field {
	fields := []Field{
		SectionField(databasesKey),
		IntField(databasesKey+".DefaultWorkers", &c.DefaultWorkers),
	}
	for i := range c.Connections {
		conn := &c.Connections[i]
		base := indexPath(databasesKey+".Connections", i)
		fields = append(fields,
			SectionField(base),
			StringField(base+".Name", &conn.Name),
			BoolField(base+".Enabled", &conn.Enabled),
			StringField(base+".Type", &conn.Type),
			StringField(base+".Database", &conn.Database),
			StringField(base+".Host", &conn.Host),
			StringField(base+".Port", &conn.Port),
			StringField(base+".User", &conn.User),
			SensitiveField(base+".Pass", &conn.Pass),
			IntField(base+".Workers", &conn.Workers),
			StringField(base+".BootstrapQuery", &conn.BootstrapQuery),
		)
	}
	return fields
}

func (c *DatabaseConfig) load(p *Processor) error {
	c.reset()

	path := databasesKey + ".Connections"
	if conns, ok := p.Document().Array(path); ok {
		p.mark(path)
		n := len(conns)
		if n > MaxDatabaseConnections {
			log := p.Logger("Databases")
			log.Warn().Int("count", n).Int("max", MaxDatabaseConnections).
				Msg(fmt.Sprintf("ignoring %d connections beyond the first %d", n-MaxDatabaseConnections, MaxDatabaseConnections))
			n = MaxDatabaseConnections
		}
		c.Connections = make([]DatabaseConnection, n)
		for i := range c.Connections {
			c.Connections[i] = blankConnection()
		}
	}

	return p.Process("Databases", c.fields()...)
}

func (c *DatabaseConfig) validate() error {
	if err := checkMin("Databases", "DefaultWorkers", c.DefaultWorkers, 1); err != nil {
		return err
	}
	for i, conn := range c.Connections {
		if !conn.Enabled {
			continue
		}
		base := fmt.Sprintf("Connections[%d]", i)
		if err := firstError(
			checkNonEmpty("Databases", base+".Name", conn.Name),
			checkMin("Databases", base+".Workers", conn.Workers, 1),
		); err != nil {
			return err
		}
	}
	return nil
}

// Connection finds an enabled connection by name.
func (c *DatabaseConfig) Connection(name string) (DatabaseConnection, bool) {
	for _, conn := range c.Connections {
		if conn.Name == name && conn.Enabled {
			return conn, true
		}
	}
	return DatabaseConnection{}, false
}
