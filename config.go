package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// DefaultTokenExpirationMinutes is used when a config carries no lifetime.
const DefaultTokenExpirationMinutes = 30

var _ Config = SimpleConfig{}

// SimpleConfig is a value implementation of Config for hosts without their
// own configuration layer. TokenExpiration is in minutes.
type SimpleConfig struct {
	SigningKey      string   `json:"signing_key"`
	SigningMethod   string   `json:"signing_method"`
	Audience        []string `json:"audience"`
	TokenExpiration int      `json:"token_expiration"`
}

// GetSigningKey will return the signing key
func (c SimpleConfig) GetSigningKey() string {
	return c.SigningKey
}

// GetSigningMethod will return the signing method, HS256 by default
func (c SimpleConfig) GetSigningMethod() string {
	if c.SigningMethod == "" {
		return "HS256"
	}
	return c.SigningMethod
}

// GetAudience will return the expected token audience
func (c SimpleConfig) GetAudience() []string {
	return c.Audience
}

// GetTokenExpiration will return the token lifetime in minutes. A zero value
// falls back to the default; negative values pass through untouched so tests
// can mint already expired tokens.
func (c SimpleConfig) GetTokenExpiration() int {
	if c.TokenExpiration == 0 {
		return DefaultTokenExpirationMinutes
	}
	return c.TokenExpiration
}

// Validate will run validation rules
func (c SimpleConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(
			&c.SigningKey,
			validation.Required,
			validation.Length(16, 0),
		),
		validation.Field(
			&c.SigningMethod,
			validation.In("HS256", "HS384", "HS512"),
		),
		validation.Field(
			&c.Audience,
			validation.Required,
		),
	)
}
