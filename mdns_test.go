// FILE: hydrogen-config/mdns_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMDNSServer(t *testing.T) {
	t.Run("DefaultsDisabled", func(t *testing.T) {
		var c MDNSServerConfig
		_, err := loadOne(t, &c, `{}`, nil)
		require.NoError(t, err)
		assert.False(t, c.Enabled())
		assert.Empty(t, c.Services)
		assert.Equal(t, "0.1.0", c.Version)
	})

	t.Run("Services", func(t *testing.T) {
		var c MDNSServerConfig
		p, err := loadOne(t, &c, `{"mDNSServer": {
			"EnableIPv4": true,
			"Services": [
				{"Name": "api", "Port": 5000, "TxtRecords": ["path=/api", "${env.TXT}"]},
				{"Name": "ws", "Type": "_ws._tcp.local", "TxtRecords": "proto=hydrogen"}
			]
		}}`, map[string]string{"TXT": "version=1"})
		require.NoError(t, err)

		require.Len(t, c.Services, 2)
		assert.Equal(t, "_http._tcp.local", c.Services[0].Type, "listed services start from the default service")
		assert.Equal(t, []string{"path=/api", "version=1"}, c.Services[0].TxtRecords)
		assert.Equal(t, 80, c.Services[1].Port)
		assert.Equal(t, []string{"proto=hydrogen"}, c.Services[1].TxtRecords)
		assert.Empty(t, p.Report().collectUnknown(p.Document()))
	})

	t.Run("BadServicePort", func(t *testing.T) {
		var c MDNSServerConfig
		_, err := loadOne(t, &c, `{"mDNSServer": {"EnableIPv6": true, "Services": [{"Port": 0}]}}`, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestMDNSClient(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		var c MDNSClientConfig
		_, err := loadOne(t, &c, `{}`, nil)
		require.NoError(t, err)
		assert.True(t, c.Enabled())
		assert.Equal(t, 30, c.ScanIntervalMs)
		assert.True(t, c.HealthCheck.Enabled)
	})

	t.Run("ServiceTypes", func(t *testing.T) {
		var c MDNSClientConfig
		_, err := loadOne(t, &c, `{"mDNSClient": {"ServiceTypes": [
			{"Type": "_hydrogen._tcp.local", "Required": true},
			{"Type": "_octoprint._tcp.local", "AutoConnect": true}
		]}}`, nil)
		require.NoError(t, err)
		require.Len(t, c.ServiceTypes, 2)
		assert.True(t, c.ServiceTypes[0].Required)
		assert.False(t, c.ServiceTypes[0].AutoConnect)
		assert.True(t, c.ServiceTypes[1].AutoConnect)
	})

	t.Run("MissingType", func(t *testing.T) {
		var c MDNSClientConfig
		_, err := loadOne(t, &c, `{"mDNSClient": {"ServiceTypes": [{"Required": true}]}}`, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("DisabledSkipsChecks", func(t *testing.T) {
		var c MDNSClientConfig
		_, err := loadOne(t, &c, `{"mDNSClient": {"EnableIPv4": false, "ScanIntervalMs": 0}}`, nil)
		assert.NoError(t, err)
	})
}
