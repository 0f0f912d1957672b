// FILE: hydrogen-config/helper_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		segments, err := parsePath("Databases.Connections[1].Name")
		require.NoError(t, err)
		require.Len(t, segments, 3)
		assert.Equal(t, pathSegment{key: "Databases"}, segments[0])
		assert.Equal(t, pathSegment{key: "Connections", indices: []int{1}}, segments[1])
		assert.Equal(t, pathSegment{key: "Name"}, segments[2])
	})

	t.Run("NestedIndices", func(t *testing.T) {
		segments, err := parsePath("Logging.Levels[2][1]")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, segments[1].indices)
	})

	t.Run("KeysWithSpacesAndDashes", func(t *testing.T) {
		_, err := parsePath("Network.Available.br-lan 0")
		assert.NoError(t, err)
	})

	invalid := []string{"", "a..b", ".a", "a.", "a[", "a[x]", "a[-1]", "a[0]b", "[0]"}
	for _, path := range invalid {
		t.Run("Invalid"+path, func(t *testing.T) {
			_, err := parsePath(path)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestIndentLevelAndShortName(t *testing.T) {
	assert.Equal(t, 0, IndentLevel("Server"))
	assert.Equal(t, 1, IndentLevel("Server.Port"))
	assert.Equal(t, 2, IndentLevel("Databases.Connections[0].Name"))
	assert.Equal(t, 5, IndentLevel("a.b.c.d.e.f.g.h"))

	assert.Equal(t, "Server", ShortName("Server"))
	assert.Equal(t, "Port", ShortName("WebServer.Port"))
	assert.Equal(t, "Connections[0]", ShortName("Databases.Connections[0]"))
	assert.Equal(t, "Levels[0][1]", ShortName("Logging.Levels[0][1]"))
}

func TestFlattenDocument(t *testing.T) {
	tree := map[string]any{
		"A": map[string]any{
			"B":     int64(1),
			"Empty": map[string]any{},
			"List":  []any{int64(1), int64(2)},
			"Objs": []any{
				map[string]any{"Name": "x"},
			},
			"Pairs": []any{
				[]any{int64(0), "ALL"},
			},
		},
		"C": "top",
	}

	flat := flattenDocument(tree, "")
	assert.Equal(t, int64(1), flat["A.B"])
	assert.Equal(t, map[string]any{}, flat["A.Empty"])
	assert.Equal(t, []any{int64(1), int64(2)}, flat["A.List"])
	assert.Equal(t, "x", flat["A.Objs[0].Name"])
	assert.Equal(t, []any{int64(0), "ALL"}, flat["A.Pairs[0]"], "a scalar array inside an array is one leaf")
	assert.Equal(t, "top", flat["C"])
	assert.Len(t, flat, 6)
}

func TestSetNestedValue(t *testing.T) {
	tree := map[string]any{
		"Servers": []any{map[string]any{"Host": "a"}},
		"Scalar":  int64(1),
	}

	require.NoError(t, setNestedValue(tree, "New.Deep.Key", "v"))
	assert.Equal(t, "v", tree["New"].(map[string]any)["Deep"].(map[string]any)["Key"])

	require.NoError(t, setNestedValue(tree, "Servers[0].Host", "b"))
	assert.Equal(t, "b", tree["Servers"].([]any)[0].(map[string]any)["Host"])

	// A scalar in the way is replaced by an object
	require.NoError(t, setNestedValue(tree, "Scalar.Inner", true))
	assert.Equal(t, true, tree["Scalar"].(map[string]any)["Inner"])

	err := setNestedValue(tree, "Servers[3].Host", "c")
	assert.ErrorIs(t, err, ErrInvalidPath)

	err = setNestedValue(tree, "bad..path", 1)
	assert.ErrorIs(t, err, ErrInvalidPath)
}
