// FILE: hydrogen-config/oidc.go
package config

import "strings"

const oidcKey = "OIDC"

// OIDCConfig configures the OpenID Connect provider.
type OIDCConfig struct {
	Enabled      bool
	Issuer       string
	ClientId     string
	ClientSecret string
	RedirectUri  string
	Port         int
	AuthMethod   string
	Scope        string
	VerifySSL    bool
	Endpoints    OIDCEndpoints
	Keys         OIDCKeys
	Tokens       OIDCTokens
}

// OIDCEndpoints are paths, always with a leading slash.
type OIDCEndpoints struct {
	Authorization string
	Token         string
	UserInfo      string
	JWKS          string
	EndSession    string
	Introspection string
	Revocation    string
	Registration  string
}

// OIDCKeys controls signing key storage and rotation.
type OIDCKeys struct {
	SigningKey           string
	EncryptionKey        string
	JWKSUri              string
	StoragePath          string
	EncryptionEnabled    bool
	RotationIntervalDays int
}

// OIDCTokens sets token lifetimes, in seconds, and algorithms.
type OIDCTokens struct {
	AccessTokenLifetime  int
	RefreshTokenLifetime int
	IdTokenLifetime      int
	SigningAlg           string
	EncryptionAlg        string
}

func (c *OIDCConfig) reset() {
	*c = OIDCConfig{
		Enabled:    true,
		Port:       8443,
		AuthMethod: "client_secret_basic",
		Scope:      "openid profile email",
		VerifySSL:  true,
		Endpoints: OIDCEndpoints{
			Authorization: "/authorize",
			Token:         "/token",
			UserInfo:      "/userinfo",
			JWKS:          "/jwks",
			EndSession:    "/end_session",
			Introspection: "/introspect",
			Revocation:    "/revoke",
			Registration:  "/register",
		},
		Keys: OIDCKeys{
			StoragePath:          "/var/lib/hydrogen/keys",
			EncryptionEnabled:    true,
			RotationIntervalDays: 30,
		},
		Tokens: OIDCTokens{
			AccessTokenLifetime:  3600,
			RefreshTokenLifetime: 86400,
			IdTokenLifetime:      3600,
			SigningAlg:           "RS256",
			EncryptionAlg:        "A256GCM",
		},
	}
}

// endpoints lists each endpoint with its document key.
func (c *OIDCConfig) endpoints() []struct {
	key string
	dst *string
} {
	e := &c.Endpoints
	return []struct {
		key string
		dst *string
	}{
		{"Authorization", &e.Authorization},
		{"Token", &e.Token},
		{"UserInfo", &e.UserInfo},
		{"JWKS", &e.JWKS},
		{"EndSession", &e.EndSession},
		{"Introspection", &e.Introspection},
		{"Revocation", &e.Revocation},
		{"Registration", &e.Registration},
	}
}

func (c *OIDCConfig) fields() []Field {
	k := oidcKey + "."
	fields := []Field{
		SectionField(oidcKey),
		BoolField(k+"Enabled", &c.Enabled),
		StringField(k+"Issuer", &c.Issuer),
		StringField(k+"ClientId", &c.ClientId),
		SensitiveField(k+"ClientSecret", &c.ClientSecret),
		StringField(k+"RedirectUri", &c.RedirectUri),
		IntField(k+"Port", &c.Port),
		StringField(k+"AuthMethod", &c.AuthMethod),
		StringField(k+"Scope", &c.Scope),
		BoolField(k+"VerifySSL", &c.VerifySSL),
		SectionField(k + "Endpoints"),
	}
	for _, e := range c.endpoints() {
		fields = append(fields, StringField(k+"Endpoints."+e.key, e.dst))
	}
	return append(fields,
		SectionField(k+"Keys"),
		SensitiveField(k+"Keys.SigningKey", &c.Keys.SigningKey),
		SensitiveField(k+"Keys.EncryptionKey", &c.Keys.EncryptionKey),
		StringField(k+"Keys.JWKSUri", &c.Keys.JWKSUri),
		StringField(k+"Keys.StoragePath", &c.Keys.StoragePath),
		BoolField(k+"Keys.EncryptionEnabled", &c.Keys.EncryptionEnabled),
		IntField(k+"Keys.RotationIntervalDays", &c.Keys.RotationIntervalDays),
		SectionField(k+"Tokens"),
		IntField(k+"Tokens.AccessTokenLifetime", &c.Tokens.AccessTokenLifetime),
		IntField(k+"Tokens.RefreshTokenLifetime", &c.Tokens.RefreshTokenLifetime),
		IntField(k+"Tokens.IdTokenLifetime", &c.Tokens.IdTokenLifetime),
		StringField(k+"Tokens.SigningAlg", &c.Tokens.SigningAlg),
		StringField(k+"Tokens.EncryptionAlg", &c.Tokens.EncryptionAlg),
	)
}

func (c *OIDCConfig) load(p *Processor) error {
	c.reset()
	if err := p.Process("OIDC", c.fields()...); err != nil {
		return err
	}
	for _, e := range c.endpoints() {
		*e.dst = ensureLeadingSlash(*e.dst)
	}
	return nil
}

func ensureLeadingSlash(s string) string {
	if s == "" || strings.HasPrefix(s, "/") || IsEnvRef(s) {
		return s
	}
	return "/" + s
}

func (c *OIDCConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	const s = "OIDC"
	return firstError(
		checkPort(s, "Port", c.Port),
		checkMin(s, "Keys.RotationIntervalDays", c.Keys.RotationIntervalDays, 1),
		checkMin(s, "Tokens.AccessTokenLifetime", c.Tokens.AccessTokenLifetime, 1),
		checkMin(s, "Tokens.RefreshTokenLifetime", c.Tokens.RefreshTokenLifetime, 1),
		checkMin(s, "Tokens.IdTokenLifetime", c.Tokens.IdTokenLifetime, 1),
	)
}
