package auth

import (
	"fmt"
	"reflect"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

var _ TokenIssuer = (*TokenService)(nil)
var _ TokenValidator = (*TokenService)(nil)

// TokenService issues and validates signed session tokens. It implements
// both TokenIssuer and TokenValidator; the pairing is a convenience, either
// capability can be swapped independently.
type TokenService struct {
	signingKey      []byte
	signingMethod   jwt.SigningMethod
	tokenExpiration int
	audience        jwt.ClaimStrings
	logger          Logger
}

// NewTokenService creates a new TokenService instance. tokenExpiration is in
// minutes and may be negative, which mints already expired tokens.
// signingMethod must name an HMAC method (HS256, HS384, HS512); an empty
// value selects HS256.
func NewTokenService(signingKey []byte, signingMethod string, tokenExpiration int, audience []string, logger Logger) (*TokenService, error) {
	if len(signingKey) == 0 {
		return nil, errors.New("signing key is required", errors.CategoryBadInput)
	}

	if signingMethod == "" {
		signingMethod = "HS256"
	}

	method := jwt.GetSigningMethod(signingMethod)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New(
			fmt.Sprintf("unsupported signing method: %s", signingMethod),
			errors.CategoryBadInput,
		)
	}

	if logger == nil {
		logger = defLogger{}
	}

	var aud jwt.ClaimStrings
	if len(audience) > 0 {
		aud = make(jwt.ClaimStrings, len(audience))
		copy(aud, audience)
	}

	return &TokenService{
		signingKey:      signingKey,
		signingMethod:   method,
		tokenExpiration: tokenExpiration,
		audience:        aud,
		logger:          logger,
	}, nil
}

// NewTokenServiceFromConfig builds a TokenService from a Config.
func NewTokenServiceFromConfig(cfg Config, logger Logger) (*TokenService, error) {
	return NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetSigningMethod(),
		cfg.GetTokenExpiration(),
		cfg.GetAudience(),
		logger,
	)
}

// WithLogger replaces the service logger.
func (ts *TokenService) WithLogger(logger Logger) *TokenService {
	if logger != nil {
		ts.logger = logger
	}
	return ts
}

// Issue mints a signed token for a verified identity. An absent identity, or
// one whose email is missing or not an email address, is a contract
// violation: Issue fails loudly instead of signing an empty subject.
func (ts *TokenService) Issue(identity Identity) (string, error) {
	if identity == nil || reflect.ValueOf(identity).IsZero() {
		ts.logger.Error("TokenService issue called with absent identity")
		return "", ErrInvalidIssuanceInput
	}

	if err := validation.Validate(identity.Email(), validation.Required, is.Email); err != nil {
		ts.logger.Error("TokenService issue called with invalid identity: %v", err)
		return "", errors.Wrap(err, ErrInvalidIssuanceInput.Category, ErrInvalidIssuanceInput.Message).
			WithTextCode(ErrInvalidIssuanceInput.TextCode)
	}

	claims := newSessionClaims(
		identity.Email(),
		ts.audience,
		time.Now(),
		time.Duration(ts.tokenExpiration)*time.Minute,
	)

	return ts.SignClaims(claims)
}

// SignClaims signs session claims using the configured key and method.
func (ts *TokenService) SignClaims(claims *SessionClaims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	token := jwt.NewWithClaims(ts.signingMethod, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign session token")
	}

	return signedString, nil
}

// Validate parses and verifies a token string, returning the embedded
// claims. Expired tokens map to ErrTokenExpired; every other failure (bad
// signature, wrong audience, foreign signing method, broken claim schema)
// maps to ErrTokenMalformed. jwt library error types never cross this
// boundary untranslated.
func (ts *TokenService) Validate(tokenString string) (*SessionClaims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 1)
	if len(ts.audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(ts.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != ts.signingMethod.Alg() {
			ts.logger.Error("TokenService validate encountered unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService validate could not decode claims")
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
