// FILE: hydrogen-config/swagger.go
package config

const swaggerKey = "Swagger"

// Swagger limits.
const (
	MaxSwaggerPrefixLength      = 64
	MaxSwaggerTitleLength       = 128
	MaxSwaggerVersionLength     = 32
	MaxSwaggerDescriptionLength = 1024
	MinSwaggerExpandDepth       = -1
	MaxSwaggerExpandDepth       = 10
)

// SwaggerDocExpansions are the accepted UIOptions.DocExpansion values.
var SwaggerDocExpansions = []string{"list", "full", "none"}

// SwaggerConfig configures the API documentation pages.
type SwaggerConfig struct {
	Enabled    bool
	Prefix     string
	WebRoot    string
	CORSOrigin string
	Metadata   SwaggerMetadata
	UIOptions  SwaggerUIOptions
}

// SwaggerMetadata is shown at the top of the documentation.
type SwaggerMetadata struct {
	Title       string
	Description string
	Version     string
	Contact     SwaggerContact
	License     SwaggerLicense
}

// SwaggerContact is the API maintainer.
type SwaggerContact struct {
	Name  string
	Email string
	URL   string
}

// SwaggerLicense names the API license.
type SwaggerLicense struct {
	Name string
	URL  string
}

// SwaggerUIOptions are passed to the documentation UI.
type SwaggerUIOptions struct {
	TryItEnabled             bool
	AlwaysExpanded           bool
	DisplayOperationId       bool
	DefaultModelsExpandDepth int
	DefaultModelExpandDepth  int
	ShowExtensions           bool
	ShowCommonExtensions     bool
	DocExpansion             string
	SyntaxHighlightTheme     string
}

func (c *SwaggerConfig) reset() {
	*c = SwaggerConfig{
		Enabled:    true,
		Prefix:     "/apidocs",
		WebRoot:    "PAYLOAD:/swagger",
		CORSOrigin: "*",
		Metadata: SwaggerMetadata{
			Title:       "Hydrogen API",
			Description: "Hydrogen Server API",
			Version:     "1.0.0",
			Contact: SwaggerContact{
				Name:  "Philement Support",
				Email: "api@example.com",
				URL:   "https://philement.com/support",
			},
			License: SwaggerLicense{
				Name: "MIT",
				URL:  "https://opensource.org/licenses/MIT",
			},
		},
		UIOptions: SwaggerUIOptions{
			TryItEnabled:             true,
			AlwaysExpanded:           false,
			DisplayOperationId:       false,
			DefaultModelsExpandDepth: 1,
			DefaultModelExpandDepth:  1,
			ShowExtensions:           false,
			ShowCommonExtensions:     true,
			DocExpansion:             "list",
			SyntaxHighlightTheme:     "agate",
		},
	}
}

func (c *SwaggerConfig) fields() []Field {
	k := swaggerKey + "."
	meta := k + "Metadata."
	ui := k + "UIOptions."
	return []Field{
		SectionField(swaggerKey),
		BoolField(k+"Enabled", &c.Enabled),
		StringField(k+"Prefix", &c.Prefix),
		StringField(k+"WebRoot", &c.WebRoot),
		StringField(k+"CORSOrigin", &c.CORSOrigin),

		SectionField(k + "Metadata"),
		StringField(meta+"Title", &c.Metadata.Title),
		StringField(meta+"Description", &c.Metadata.Description),
		StringField(meta+"Version", &c.Metadata.Version),
		SectionField(meta + "Contact"),
		StringField(meta+"Contact.Name", &c.Metadata.Contact.Name),
		StringField(meta+"Contact.Email", &c.Metadata.Contact.Email),
		StringField(meta+"Contact.URL", &c.Metadata.Contact.URL),
		SectionField(meta + "License"),
		StringField(meta+"License.Name", &c.Metadata.License.Name),
		StringField(meta+"License.URL", &c.Metadata.License.URL),

		SectionField(k + "UIOptions"),
		BoolField(ui+"TryItEnabled", &c.UIOptions.TryItEnabled),
		BoolField(ui+"AlwaysExpanded", &c.UIOptions.AlwaysExpanded),
		BoolField(ui+"DisplayOperationId", &c.UIOptions.DisplayOperationId),
		IntField(ui+"DefaultModelsExpandDepth", &c.UIOptions.DefaultModelsExpandDepth),
		IntField(ui+"DefaultModelExpandDepth", &c.UIOptions.DefaultModelExpandDepth),
		BoolField(ui+"ShowExtensions", &c.UIOptions.ShowExtensions),
		BoolField(ui+"ShowCommonExtensions", &c.UIOptions.ShowCommonExtensions),
		StringField(ui+"DocExpansion", &c.UIOptions.DocExpansion),
		StringField(ui+"SyntaxHighlightTheme", &c.UIOptions.SyntaxHighlightTheme),
	}
}

func (c *SwaggerConfig) load(p *Processor) error {
	c.reset()
	return p.Process("Swagger", c.fields()...)
}

func (c *SwaggerConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	const s = "Swagger"
	if err := firstError(
		checkLength(s, "Prefix", c.Prefix, 1, MaxSwaggerPrefixLength),
		checkSlashPrefix(s, "Prefix", c.Prefix),
		checkLength(s, "Metadata.Title", c.Metadata.Title, 1, MaxSwaggerTitleLength),
		checkLength(s, "Metadata.Version", c.Metadata.Version, 1, MaxSwaggerVersionLength),
		checkLength(s, "Metadata.Description", c.Metadata.Description, 0, MaxSwaggerDescriptionLength),
		checkRange(s, "UIOptions.DefaultModelsExpandDepth", c.UIOptions.DefaultModelsExpandDepth, MinSwaggerExpandDepth, MaxSwaggerExpandDepth),
		checkRange(s, "UIOptions.DefaultModelExpandDepth", c.UIOptions.DefaultModelExpandDepth, MinSwaggerExpandDepth, MaxSwaggerExpandDepth),
	); err != nil {
		return err
	}
	for _, mode := range SwaggerDocExpansions {
		if c.UIOptions.DocExpansion == mode {
			return nil
		}
	}
	return invalid(s, "UIOptions.DocExpansion", "%q must be one of list, full, none", c.UIOptions.DocExpansion)
}
