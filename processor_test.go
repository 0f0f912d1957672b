// FILE: hydrogen-config/processor_test.go
package config

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSecret satisfies the API JWT length check.
const testSecret = "0123456789abcdef0123456789abcdef"

// testEnv is the minimal environment under which the defaults load.
func testEnv(pairs ...string) map[string]string {
	env := map[string]string{"JWT_SECRET": testSecret}
	for i := 0; i+1 < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env
}

func mustParse(t *testing.T, data string) *Document {
	t.Helper()
	doc, err := ParseDocument([]byte(data), FormatJSON)
	require.NoError(t, err)
	return doc
}

// newTestProcessor returns a processor logging JSON lines into the returned buffer.
func newTestProcessor(t *testing.T, data string, env map[string]string) (*Processor, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewProcessor(mustParse(t, data), zerolog.New(&buf), MapEnv(env)), &buf
}

// logEntries decodes every JSON log line in buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

// entryFor finds the log entry for a field path.
func entryFor(t *testing.T, entries []map[string]any, path string) map[string]any {
	t.Helper()
	for _, e := range entries {
		if e["path"] == path {
			return e
		}
	}
	t.Fatalf("no log entry for %s", path)
	return nil
}

func TestProcessPriority(t *testing.T) {
	t.Run("DefaultReferenceWinsOverDocument", func(t *testing.T) {
		p, _ := newTestProcessor(t, `{"API": {"JWTSecret": "from-file"}}`, map[string]string{"JWT_SECRET": "from-env"})
		secret := EnvRef("JWT_SECRET")
		require.NoError(t, p.Process("API", SensitiveField("API.JWTSecret", &secret)))

		assert.Equal(t, "from-env", secret)
		res, _ := p.Report().Lookup("API.JWTSecret")
		assert.Equal(t, SourceEnv, res.Source)
		assert.Equal(t, "JWT_SECRET", res.EnvVar)
		assert.False(t, res.Default)
	})

	t.Run("DocumentLiteralWhenDefaultReferenceUnset", func(t *testing.T) {
		p, _ := newTestProcessor(t, `{"API": {"JWTSecret": "from-file"}}`, nil)
		secret := EnvRef("JWT_SECRET")
		require.NoError(t, p.Process("API", SensitiveField("API.JWTSecret", &secret)))

		assert.Equal(t, "from-file", secret)
		res, _ := p.Report().Lookup("API.JWTSecret")
		assert.Equal(t, SourceFile, res.Source)
		assert.Empty(t, res.EnvVar)
	})

	t.Run("DocumentReference", func(t *testing.T) {
		p, _ := newTestProcessor(t, `{"WebServer": {"Port": "${env.PORT}"}}`, map[string]string{"PORT": "8080"})
		port := 5000
		require.NoError(t, p.Process("WebServer", IntField("WebServer.Port", &port)))

		assert.Equal(t, 8080, port)
		res, _ := p.Report().Lookup("WebServer.Port")
		assert.Equal(t, SourceEnv, res.Source)
		assert.Equal(t, "PORT", res.EnvVar)
	})

	t.Run("DocumentLiteral", func(t *testing.T) {
		p, _ := newTestProcessor(t, `{"WebServer": {"Port": 9000}}`, nil)
		port := 5000
		require.NoError(t, p.Process("WebServer", IntField("WebServer.Port", &port)))
		assert.Equal(t, 9000, port)
	})

	t.Run("DefaultWhenAbsent", func(t *testing.T) {
		p, _ := newTestProcessor(t, `{}`, nil)
		port := 5000
		require.NoError(t, p.Process("WebServer", IntField("WebServer.Port", &port)))

		assert.Equal(t, 5000, port)
		res, _ := p.Report().Lookup("WebServer.Port")
		assert.True(t, res.Default)
		assert.Equal(t, SourceDefault, res.Source)
	})

	t.Run("NullCountsAsAbsent", func(t *testing.T) {
		p, buf := newTestProcessor(t, `{"WebServer": {"Port": null}}`, nil)
		port := 5000
		require.NoError(t, p.Process("WebServer", IntField("WebServer.Port", &port)))
		assert.Equal(t, 5000, port)
		assert.Equal(t, "info", entryFor(t, logEntries(t, buf), "WebServer.Port")["level"])
	})
}

func TestProcessTypeMismatch(t *testing.T) {
	p, buf := newTestProcessor(t, `{
		"S": {"Flag": 1, "Count": 2.5, "Name": 42, "Size": -1, "Level": "LOUD", "Ratio": "fast"}
	}`, nil)

	flag, count, size, level := true, 3, 10, LevelInfo
	name, ratio := "keep", 1.5
	require.NoError(t, p.Process("Test",
		BoolField("S.Flag", &flag),
		IntField("S.Count", &count),
		StringField("S.Name", &name),
		SizeField("S.Size", &size),
		LevelField("S.Level", &level, DefaultLevelNames),
		FloatField("S.Ratio", &ratio),
	))

	assert.True(t, flag, "an integer never becomes a boolean")
	assert.Equal(t, 3, count, "a float never becomes an integer")
	assert.Equal(t, "keep", name)
	assert.Equal(t, 10, size, "sizes are not negative")
	assert.Equal(t, LevelInfo, level)
	assert.Equal(t, 1.5, ratio)

	entries := logEntries(t, buf)
	for _, path := range []string{"S.Flag", "S.Count", "S.Name", "S.Size", "S.Level", "S.Ratio"} {
		e := entryFor(t, entries, path)
		assert.Equal(t, "error", e["level"], path)
		assert.Equal(t, true, e["default"], path)
		assert.NotEmpty(t, e["error"], path)
	}
}

func TestProcessEnvironmentTyping(t *testing.T) {
	p, buf := newTestProcessor(t, `{
		"S": {"Flag": "${env.FLAG}", "Count": "${env.COUNT}", "Ratio": "${env.RATIO}", "Missing": "${env.MISSING}", "Zip": "${env.ZIP}"}
	}`, map[string]string{"FLAG": "TRUE", "COUNT": "1.5", "RATIO": "2", "ZIP": "00501"})

	flag, count, missing := false, 7, 1
	ratio := 0.0
	zip := ""
	require.NoError(t, p.Process("Test",
		BoolField("S.Flag", &flag),
		IntField("S.Count", &count),
		FloatField("S.Ratio", &ratio),
		IntField("S.Missing", &missing),
		StringField("S.Zip", &zip),
	))

	assert.True(t, flag)
	assert.Equal(t, 7, count, "1.5 is not an integer")
	assert.Equal(t, 2.0, ratio, "integers satisfy floats")
	assert.Equal(t, 1, missing)
	assert.Equal(t, "00501", zip, "strings keep the variable text")

	entries := logEntries(t, buf)
	assert.Equal(t, "error", entryFor(t, entries, "S.Count")["level"])
	missingEntry := entryFor(t, entries, "S.Missing")
	assert.Equal(t, "error", missingEntry["level"])
	assert.Equal(t, "MISSING", missingEntry["env"])
	assert.Equal(t, "info", entryFor(t, entries, "S.Flag")["level"])
}

func TestProcessEmptyVariable(t *testing.T) {
	p, _ := newTestProcessor(t, `{"S": {"Name": "${env.EMPTY}", "Count": "${env.EMPTY}"}}`, map[string]string{"EMPTY": ""})

	name, count := "default", 4
	require.NoError(t, p.Process("Test", StringField("S.Name", &name), IntField("S.Count", &count)))

	assert.Equal(t, "", name, "an empty variable is an empty string")
	assert.Equal(t, 4, count, "an empty variable is not a number")
}

func TestProcessLogLine(t *testing.T) {
	p, buf := newTestProcessor(t, `{"WebServer": {"Port": 8080}}`, nil)
	port, ipv6 := 5000, false
	require.NoError(t, p.Process("WebServer",
		SectionField("WebServer"),
		IntField("WebServer.Port", &port),
		BoolField("WebServer.EnableIPv6", &ipv6),
	))

	entries := logEntries(t, buf)
	require.Len(t, entries, 3)

	assert.Equal(t, "Config-WebServer", entries[0]["subsystem"])
	assert.Equal(t, "― WebServer", entries[0]["message"])
	assert.Equal(t, "――― Port: 8080", entries[1]["message"])
	assert.Equal(t, "file", entries[1]["source"])
	assert.Equal(t, "――― EnableIPv6: false *", entries[2]["message"])
	assert.Equal(t, true, entries[2]["default"])
}

func TestProcessSectionNotObject(t *testing.T) {
	p, buf := newTestProcessor(t, `{"WebServer": 5}`, nil)
	require.NoError(t, p.Process("WebServer", SectionField("WebServer")))

	e := entryFor(t, logEntries(t, buf), "WebServer")
	assert.Equal(t, "error", e["level"])
	res, _ := p.Report().Lookup("WebServer")
	assert.True(t, res.Default)
}

func TestProcessLists(t *testing.T) {
	p, _ := newTestProcessor(t, `{"N": {"Ports": [1, "${env.P}"], "Bad": ["x"], "Tags": "solo"}}`, map[string]string{"P": "2"})

	ports := []int{}
	bad := []int{9}
	tags := []string{}
	require.NoError(t, p.Process("Test",
		IntListField("N.Ports", &ports),
		IntListField("N.Bad", &bad),
		StringListField("N.Tags", &tags),
	))

	assert.Equal(t, []int{1, 2}, ports)
	assert.Equal(t, []int{9}, bad, "a failed decode keeps the default")
	assert.Equal(t, []string{"solo"}, tags)
}

func TestProcessInvalidField(t *testing.T) {
	p, _ := newTestProcessor(t, `{}`, nil)

	tests := []struct {
		name  string
		field Field
	}{
		{"NilDest", Field{Path: "A.B", Kind: KindInt}},
		{"WrongDest", Field{Path: "A.B", Kind: KindBool, Dest: new(int)}},
		{"BadPath", IntField("A..B", new(int))},
		{"UnknownKind", Field{Path: "A.B", Kind: Kind(99), Dest: new(int)}},
		{"LevelWithoutNames", LevelField("A.B", new(int), nil)},
		{"SectionWithDest", Field{Path: "A", Kind: KindSection, Dest: new(int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Process("Test", tt.field)
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}
}

func TestProcessStopsAtBrokenField(t *testing.T) {
	p, _ := newTestProcessor(t, `{"A": {"X": 1, "Y": 2}}`, nil)
	x, y := 0, 0
	err := p.Process("Test", IntField("A.X", &x), Field{Path: "A.Z", Kind: KindInt}, IntField("A.Y", &y))

	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y, "later fields are untouched")
}

func TestNewProcessorNilDocument(t *testing.T) {
	p := NewProcessor(nil, zerolog.Nop(), nil)
	require.NotNil(t, p.Document())
	assert.Empty(t, p.Document().Root())
}
