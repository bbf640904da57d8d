package auth

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes this core reads from a stored user record
type Identity interface {
	Email() string
	Salt() string
	PasswordHash() string
}

// IdentityProvider ensure we have a store to retrieve auth identity
type IdentityProvider interface {
	FindIdentityByEmail(ctx context.Context, email string) (Identity, error)
}

// CredentialHasher derives and verifies storage safe password representations
type CredentialHasher interface {
	GenerateSalt() (string, error)
	HashPassword(password, salt string) (string, error)
	VerifyPassword(password, salt, hashedPassword string) bool
	CreateSaltAndHashedPassword(password string) (PasswordUpdate, error)
}

// TokenIssuer mints signed session tokens for verified identities
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
}

// TokenValidator validates tokens and extracts claims without tying callers
// to a specific signing implementation.
type TokenValidator interface {
	Validate(tokenString string) (*SessionClaims, error)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	SubjectFromToken(token string) (string, error)
	SessionFromToken(token string) (Session, error)
	IdentityFromSession(ctx context.Context, session Session) (Identity, error)
}

// Session holds attributes that are part of an auth session
type Session interface {
	GetSubject() string
	GetAudience() []string
	GetIssuedAt() *time.Time
	GetExpiration() *time.Time
}

// Config holds auth options. Values are supplied by the host; this package
// never reads ambient configuration.
type Config interface {
	GetSigningKey() string
	GetSigningMethod() string
	GetAudience() []string
	GetTokenExpiration() int
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
