package auth

import (
	"context"
	"reflect"

	"github.com/goliatone/go-errors"
)

var _ Authenticator = (*Auther)(nil)

// Auther wires the storage collaborator, the credential hasher, and the
// token service into the authenticate operation. It keeps no mutable state
// between calls; concurrent use needs no locking.
type Auther struct {
	provider     IdentityProvider
	hasher       CredentialHasher
	tokenService *TokenService
	logger       Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, cfg Config) (*Auther, error) {
	tokenService, err := NewTokenServiceFromConfig(cfg, defLogger{})
	if err != nil {
		return nil, err
	}

	return &Auther{
		provider:     provider,
		hasher:       NewBcryptHasher(),
		tokenService: tokenService,
		logger:       defLogger{},
	}, nil
}

// WithLogger replaces the logger on the Auther and its token service.
func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
		s.tokenService.WithLogger(logger)
	}
	return s
}

// WithHasher swaps the credential hasher, e.g. for a different cost factor.
func (s *Auther) WithHasher(hasher CredentialHasher) *Auther {
	if hasher != nil {
		s.hasher = hasher
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() *TokenService {
	return s.tokenService
}

// Login authenticates the email and password pair and returns a signed
// session token. Unknown email and wrong password both surface
// ErrAuthenticationFailed so callers cannot tell which factor failed.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.provider.FindIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) || errors.IsNotFound(err) {
			s.logger.Debug("Login identity lookup miss for %s", email)
			return "", ErrAuthenticationFailed
		}
		s.logger.Error("Login identity lookup error: %v", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve identity during login")
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Debug("Login identity is nil or zero value")
		return "", ErrAuthenticationFailed
	}

	if !s.hasher.VerifyPassword(password, identity.Salt(), identity.PasswordHash()) {
		s.logger.Debug("Login password verification failed for %s", email)
		return "", ErrAuthenticationFailed
	}

	return s.tokenService.Issue(identity)
}

// SubjectFromToken validates a raw token and returns its subject, the email
// the caller re-resolves against storage. The token is not checked against
// storage here.
func (s *Auther) SubjectFromToken(token string) (string, error) {
	claims, err := s.tokenService.Validate(token)
	if err != nil {
		s.logger.Error("SubjectFromToken validation failed: %v", err)
		return "", err
	}

	return claims.Subject(), nil
}

// SessionFromToken validates a raw token and returns the session value
// described by its claims.
func (s *Auther) SessionFromToken(token string) (Session, error) {
	claims, err := s.tokenService.Validate(token)
	if err != nil {
		s.logger.Error("SessionFromToken validation failed: %v", err)
		return nil, err
	}

	return sessionFromClaims(claims), nil
}

// IdentityFromSession re-resolves the session subject against the identity
// store.
func (s *Auther) IdentityFromSession(ctx context.Context, session Session) (Identity, error) {
	identity, err := s.provider.FindIdentityByEmail(ctx, session.GetSubject())
	if err != nil {
		s.logger.Error("IdentityFromSession find identity by email: %s", err)
		return nil, err
	}

	return identity, nil
}
