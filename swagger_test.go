// FILE: hydrogen-config/swagger_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDefaults(t *testing.T) {
	var c SwaggerConfig
	_, err := loadOne(t, &c, `{}`, nil)
	require.NoError(t, err)

	assert.Equal(t, "/apidocs", c.Prefix)
	assert.Equal(t, "Hydrogen API", c.Metadata.Title)
	assert.Equal(t, "MIT", c.Metadata.License.Name)
	assert.Equal(t, "list", c.UIOptions.DocExpansion)
	assert.Equal(t, 1, c.UIOptions.DefaultModelsExpandDepth)
}

func TestSwaggerValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"PrefixWithoutSlash", `{"Swagger": {"Prefix": "docs"}}`},
		{"PrefixTooLong", `{"Swagger": {"Prefix": "/` + strings.Repeat("p", MaxSwaggerPrefixLength) + `"}}`},
		{"EmptyTitle", `{"Swagger": {"Metadata": {"Title": ""}}}`},
		{"EmptyVersion", `{"Swagger": {"Metadata": {"Version": ""}}}`},
		{"DepthTooDeep", `{"Swagger": {"UIOptions": {"DefaultModelExpandDepth": 11}}}`},
		{"DepthTooShallow", `{"Swagger": {"UIOptions": {"DefaultModelsExpandDepth": -2}}}`},
		{"BadExpansion", `{"Swagger": {"UIOptions": {"DocExpansion": "some"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c SwaggerConfig
			_, err := loadOne(t, &c, tt.doc, nil)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSwaggerDisabledSkipsChecks(t *testing.T) {
	var c SwaggerConfig
	_, err := loadOne(t, &c, `{"Swagger": {"Enabled": false, "Prefix": "docs"}}`, nil)
	assert.NoError(t, err)
}

func TestSwaggerDepthBounds(t *testing.T) {
	var c SwaggerConfig
	_, err := loadOne(t, &c, `{"Swagger": {"UIOptions": {"DefaultModelsExpandDepth": -1, "DefaultModelExpandDepth": 10, "DocExpansion": "none"}}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, c.UIOptions.DefaultModelsExpandDepth)
}
