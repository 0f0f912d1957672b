// FILE: hydrogen-config/report_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRecord(t *testing.T) {
	r := newReport()
	r.record(Resolution{Path: "A.X", Value: 1, Source: SourceFile})
	r.record(Resolution{Path: "A.Y", Value: 2, Source: SourceDefault, Default: true})
	r.record(Resolution{Path: "A.X", Value: 3, Source: SourceEnv, EnvVar: "X"})

	all := r.Resolutions()
	require.Len(t, all, 2, "a path is recorded once")
	assert.Equal(t, "A.X", all[0].Path)
	assert.Equal(t, 3, all[0].Value)

	assert.Len(t, r.FromSource(SourceEnv), 1)
	assert.Len(t, r.FromSource(SourceFile), 0)
	assert.Len(t, r.Defaults(), 1)

	_, ok := r.Lookup("A.Z")
	assert.False(t, ok)
}

func TestReportNilSafe(t *testing.T) {
	var r *Report
	_, ok := r.Lookup("A")
	assert.False(t, ok)
	assert.Nil(t, r.Resolutions())
	assert.Nil(t, r.Unknown())
	assert.Empty(t, r.Defaults())
}

func TestReportKnown(t *testing.T) {
	r := newReport()
	r.record(Resolution{Path: "Network.PortAllocation.ReservedPorts"})
	r.record(Resolution{Path: "Databases.Connections[0].Name"})
	r.record(Resolution{Path: "Logging.Levels[0][1]"})
	r.mark("Logging.Levels[0][0]")
	r.mark("MailRelay.Servers")

	assert.True(t, r.Known("Network.PortAllocation.ReservedPorts"))
	assert.True(t, r.Known("Network.PortAllocation.ReservedPorts[1]"), "elements of a resolved array")
	assert.True(t, r.Known("Databases.Connections"), "array holding resolved elements")
	assert.True(t, r.Known("Logging.Levels[0][0]"))
	assert.True(t, r.Known("MailRelay.Servers"))

	assert.False(t, r.Known("Databases.Connections[0].Colour"))
	assert.False(t, r.Known("MailRelay.Servers[5].Host"), "marking does not claim children")
	assert.False(t, r.Known("Network.PortAllocation"))
}

func TestReportCollectUnknown(t *testing.T) {
	doc := mustParse(t, `{
		"WebServer": {"Port": 1, "Colour": "blue"},
		"Extras": {"B": true, "A": 1}
	}`)
	r := newReport()
	r.record(Resolution{Path: "WebServer.Port"})

	unknown := r.collectUnknown(doc)
	assert.Equal(t, []string{"Extras.A", "Extras.B", "WebServer.Colour"}, unknown)
	assert.Equal(t, unknown, r.Unknown())
}
