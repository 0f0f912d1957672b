// FILE: hydrogen-config/api.go
package config

import "unicode/utf8"

const apiKey = "API"

// MinJWTSecretLength is the shortest accepted JWT signing secret.
const MinJWTSecretLength = 32

// APIConfig configures the REST API under the web server.
type APIConfig struct {
	Enabled   bool
	Prefix    string
	JWTSecret string
}

func (c *APIConfig) reset() {
	*c = APIConfig{
		Enabled:   true,
		Prefix:    "/api",
		JWTSecret: EnvRef("JWT_SECRET"),
	}
}

func (c *APIConfig) fields() []Field {
	return []Field{
		SectionField(apiKey),
		BoolField(apiKey+".Enabled", &c.Enabled),
		StringField(apiKey+".Prefix", &c.Prefix),
		SensitiveField(apiKey+".JWTSecret", &c.JWTSecret),
	}
}

func (c *APIConfig) load(p *Processor) error {
	c.reset()
	return p.Process("API", c.fields()...)
}

func (c *APIConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if err := checkSlashPrefix("API", "Prefix", c.Prefix); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(resolvedText(c.JWTSecret)); n < MinJWTSecretLength {
		// Never echo the secret
		return invalid("API", "JWTSecret", "must be at least %d characters, got %d", MinJWTSecretLength, n)
	}
	return nil
}
