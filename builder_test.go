// File: hydrogen-config/builder_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFixture(t *testing.T) {
	cfg, err := NewBuilder().
		WithFile(filepath.Join("testdata", "hydrogen.json")).
		WithEnvironment(testEnv("PAYLOAD_KEY", "payload-key-value", "ACURANZO_DB_TYPE", "postgresql")).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "hydrogen-test", cfg.Server.ServerName)
	assert.Equal(t, "payload-key-value", cfg.Server.PayloadKey)
	assert.True(t, filepath.IsAbs(cfg.Server.ConfigFile))
	assert.NotEmpty(t, cfg.Server.ExecFile)

	assert.Equal(t, 8, cfg.Network.Interfaces.MaxInterfaces)
	assert.Equal(t, []int{5000, 5001}, cfg.Network.PortAllocation.ReservedPorts)
	assert.False(t, cfg.Network.InterfaceEnabled("wlan0"))

	require.Len(t, cfg.Databases.Connections, 2)
	assert.Equal(t, "postgresql", cfg.Databases.Connections[0].Type)
	assert.Equal(t, "5432", cfg.Databases.Connections[0].Port, "an unset document reference keeps the default")
	assert.Equal(t, 3, cfg.Databases.Connections[0].Workers)
	assert.False(t, cfg.Databases.Connections[1].Enabled)

	assert.Equal(t, LevelWarn, cfg.Logging.Console.DefaultLevel)
	assert.Equal(t, LevelError, cfg.Logging.Console.SubsystemLevel("WebServer"))
	assert.Equal(t, LevelWarn, cfg.Logging.Console.SubsystemLevel("Print"), "unset reference keeps the default level")
	assert.False(t, cfg.Logging.File.Enabled)

	assert.Equal(t, 8080, cfg.WebServer.Port)
	assert.True(t, cfg.WebServer.EnableIPv6)
	assert.Equal(t, "/v1", cfg.API.Prefix)
	assert.Equal(t, "Hydrogen Test API", cfg.Swagger.Metadata.Title)
	assert.Equal(t, "full", cfg.Swagger.UIOptions.DocExpansion)
	assert.True(t, cfg.MDNSServer.Enabled())
	assert.Equal(t, []string{"path=/api", "version=1.0"}, cfg.MDNSServer.Services[0].TxtRecords)
	assert.Equal(t, 120.5, cfg.Print.Motion.MaxSpeed)
	assert.Equal(t, "/oauth/token", cfg.OIDC.Endpoints.Token)

	assert.Empty(t, cfg.Report.Unknown())
}

func TestBuilderFormats(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithFile(filepath.Join("testdata", "hydrogen.toml")).
			WithEnvironment(map[string]string{}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "toml-server", cfg.Server.ServerName)
		assert.Equal(t, 9090, cfg.WebServer.Port)
		require.Len(t, cfg.Databases.Connections, 1)
		assert.Equal(t, "db.internal", cfg.Databases.Connections[0].Host)
	})

	t.Run("YAML", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithFile(filepath.Join("testdata", "hydrogen.yaml")).
			WithEnvironment(map[string]string{}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "yaml-server", cfg.Server.ServerName)
		assert.Equal(t, 9191, cfg.WebServer.Port)
		require.Len(t, cfg.MDNSClient.ServiceTypes, 1)
		assert.True(t, cfg.MDNSClient.ServiceTypes[0].Required)
	})
}

func TestBuilderErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewBuilder().
			WithFile(filepath.Join(t.TempDir(), "missing.json")).
			WithEnvironment(testEnv()).
			Build()
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("InvalidFile", func(t *testing.T) {
		_, err := NewBuilder().
			WithFile(filepath.Join("testdata", "invalid.json")).
			WithEnvironment(testEnv()).
			Build()
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		_, err := NewBuilder().
			WithFile(filepath.Join("testdata", "bad_port.json")).
			WithEnvironment(map[string]string{}).
			Build()
		var sectionErr *SectionError
		require.True(t, errors.As(err, &sectionErr))
		assert.Equal(t, "WebServer", sectionErr.Name)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := NewBuilder().WithJSON([]byte(`{`)).Build()
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("BadOverride", func(t *testing.T) {
		_, err := NewBuilder().WithJSON([]byte(`{}`)).WithOverrideArg("WebServer.Port").Build()
		assert.ErrorIs(t, err, ErrInvalidPath)

		_, err = NewBuilder().WithJSON([]byte(`{}`)).WithOverride("a..b", "1").Build()
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithJSON([]byte(`{}`)).WithEnvironment(map[string]string{}).MustBuild()
		})
	})
}

func TestBuilderOverrides(t *testing.T) {
	cfg, err := NewBuilder().
		WithJSON([]byte(`{"WebServer": {"Port": 8080}}`)).
		WithEnvironment(testEnv()).
		WithOverride("WebServer.Port", "9000").
		WithOverrideArg("WebServer.EnableIPv6=true").
		WithOverrideArg("Server.ServerName = lab").
		WithOverrideArg("Print.Motion.Jerk=2.5").
		Build()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.WebServer.Port)
	assert.True(t, cfg.WebServer.EnableIPv6)
	assert.Equal(t, " lab", cfg.Server.ServerName, "only the path is trimmed")
	assert.Equal(t, 2.5, cfg.Print.Motion.Jerk)

	res, _ := cfg.Report.Lookup("WebServer.Port")
	assert.Equal(t, SourceFile, res.Source)
}

func TestBuilderDocumentIsNotModified(t *testing.T) {
	doc := mustParse(t, `{"WebServer": {"Port": 8080}}`)
	_, err := NewBuilder().WithDocument(doc).WithEnvironment(testEnv()).WithOverride("WebServer.Port", "1").Build()
	require.NoError(t, err)

	v, _ := doc.Lookup("WebServer.Port")
	assert.Equal(t, int64(8080), v)
}

func TestBuilderValidator(t *testing.T) {
	var calls []string
	_, err := NewBuilder().
		WithJSON([]byte(`{}`)).
		WithEnvironment(testEnv()).
		WithValidator(func(*AppConfig) error { calls = append(calls, "first"); return nil }).
		WithValidator(nil).
		WithValidator(func(*AppConfig) error { calls = append(calls, "second"); return nil }).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBuilderEnvLookup(t *testing.T) {
	cfg, err := NewBuilder().
		WithJSON([]byte(`{}`)).
		WithEnvLookup(func(name string) (string, bool) {
			if name == "JWT_SECRET" {
				return testSecret, true
			}
			return "", false
		}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.API.JWTSecret)
}

func TestBuilderDebounce(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, DefaultDebounce, b.debounce)

	b.WithDebounce(time.Millisecond)
	assert.Equal(t, DefaultDebounce, b.debounce, "below the floor is ignored")

	b.WithDebounce(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, b.debounce)
}

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HYDROGEN_CONFIG", "")
	require.NoError(t, os.Unsetenv("HYDROGEN_CONFIG"))

	cfg, err := Load(filepath.Join("testdata", "minimal.json"))
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Server.ServerName)
	assert.False(t, cfg.API.Enabled)

	_, err = Load(filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
