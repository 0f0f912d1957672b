// FILE: hydrogen-config/database_test.go
package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseDefaults(t *testing.T) {
	var c DatabaseConfig
	_, err := loadOne(t, &c, `{}`, map[string]string{
		"ACURANZO_DB_HOST": "db.example.com",
		"ACURANZO_DB_PASS": "hunter2hunter2",
	})
	require.NoError(t, err)

	require.Len(t, c.Connections, 1)
	conn := c.Connections[0]
	assert.Equal(t, "Acuranzo", conn.Name)
	assert.Equal(t, "db.example.com", conn.Host)
	assert.Equal(t, "hunter2hunter2", conn.Pass)
	assert.Equal(t, "${env.ACURANZO_DB_PORT}", conn.Port, "unset references keep their text")
	assert.Equal(t, 1, conn.Workers)
}

func TestDatabaseConnectionsFromDocument(t *testing.T) {
	var c DatabaseConfig
	p, err := loadOne(t, &c, `{"Databases": {"Connections": [
		{"Name": "Primary", "Port": "${env.DB_PORT}", "Workers": 4},
		{"Name": "Archive", "Enabled": false, "Type": "sqlite"}
	]}}`, map[string]string{"DB_PORT": "6432"})
	require.NoError(t, err)

	require.Len(t, c.Connections, 2)
	assert.Equal(t, "Primary", c.Connections[0].Name)
	assert.Equal(t, "postgresql", c.Connections[0].Type, "listed connections start from the blank template")
	assert.Equal(t, "localhost", c.Connections[0].Host)
	assert.Equal(t, "6432", c.Connections[0].Port)
	assert.Equal(t, 4, c.Connections[0].Workers)
	assert.False(t, c.Connections[1].Enabled)

	res, _ := p.Report().Lookup("Databases.Connections[0].Port")
	assert.Equal(t, SourceEnv, res.Source)
	assert.Equal(t, "DB_PORT", res.EnvVar)

	conn, ok := c.Connection("Primary")
	assert.True(t, ok)
	assert.Equal(t, 4, conn.Workers)
	_, ok = c.Connection("Archive")
	assert.False(t, ok, "disabled connections are not returned")
}

func TestDatabaseConnectionCap(t *testing.T) {
	items := make([]string, MaxDatabaseConnections+2)
	for i := range items {
		items[i] = fmt.Sprintf(`{"Name": "db%d"}`, i)
	}
	doc := `{"Databases": {"Connections": [` + strings.Join(items, ",") + `]}}`

	var c DatabaseConfig
	p, err := loadOne(t, &c, doc, nil)
	require.NoError(t, err)
	assert.Len(t, c.Connections, MaxDatabaseConnections)

	unknown := p.Report().collectUnknown(p.Document())
	assert.Equal(t, []string{"Databases.Connections[5].Name", "Databases.Connections[6].Name"}, unknown)
}

func TestDatabaseValidation(t *testing.T) {
	var c DatabaseConfig
	_, err := loadOne(t, &c, `{"Databases": {"Connections": [{"Name": ""}]}}`, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = loadOne(t, &c, `{"Databases": {"DefaultWorkers": 0}}`, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = loadOne(t, &c, `{"Databases": {"Connections": [{"Name": "", "Enabled": false}]}}`, nil)
	assert.NoError(t, err, "disabled connections are not checked")
}
