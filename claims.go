package auth

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the claim set carried by session tokens: audience,
// issued-at, expiry, and the authenticated subject (the identity's email).
// Once signed the set is immutable; the signature binds every field.
type SessionClaims struct {
	jwt.RegisteredClaims
}

func newSessionClaims(subject string, audience jwt.ClaimStrings, issuedAt time.Time, lifetime time.Duration) *SessionClaims {
	var aud jwt.ClaimStrings
	if len(audience) > 0 {
		aud = make(jwt.ClaimStrings, len(audience))
		copy(aud, audience)
	}

	return &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			Audience:  aud,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
		},
	}
}

// Subject returns the subject claim
func (c *SessionClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Audience returns the audience claim
func (c *SessionClaims) Audience() []string {
	return c.RegisteredClaims.Audience
}

// Expires returns the expiration time
func (c *SessionClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// Issued returns the issued at time
func (c *SessionClaims) Issued() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Validate runs schema validation over the claim set. jwt.ParseWithClaims
// invokes it after the signature and time checks, so a token whose claims
// are structurally broken fails validation even with a good signature.
func (c *SessionClaims) Validate() error {
	return validation.Errors{
		"sub": validation.Validate(c.RegisteredClaims.Subject, validation.Required, is.Email),
		"aud": validation.Validate([]string(c.RegisteredClaims.Audience), validation.Required),
		"iat": validation.Validate(c.RegisteredClaims.IssuedAt, validation.Required),
		"exp": validation.Validate(c.RegisteredClaims.ExpiresAt, validation.Required),
	}.Filter()
}
