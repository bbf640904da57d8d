package auth

import (
	stderrors "errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to rich auth errors so transport layers can map
// failures to responses without string matching.
const (
	TextCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	TextCodeTokenExpired         = "TOKEN_EXPIRED"
	TextCodeTokenMalformed       = "TOKEN_MALFORMED"
	TextCodeInvalidIssuance      = "INVALID_ISSUANCE_INPUT"
)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = stderrors.New("identity not found")

// ErrMismatchedHashAndPassword is returned when a password and salt pair does
// not verify against the stored hash
var ErrMismatchedHashAndPassword = stderrors.New("mismatched hash and password")

// ErrNoEmptyString rejects empty hashing input
var ErrNoEmptyString = stderrors.New("value must not be an empty string")

// ErrAuthenticationFailed is the single failure surfaced for a bad login,
// whether the email is unknown or the password is wrong. Collapsing both into
// one signal keeps callers from probing which accounts exist.
var ErrAuthenticationFailed = goerrors.New("authentication was unsuccessful", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeAuthenticationFailed)

// ErrTokenExpired is surfaced when a token's expiry claim has passed.
var ErrTokenExpired = goerrors.New("authentication token has expired", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenMalformed covers every other validation failure: bad signature,
// wrong audience, unparseable or schema-invalid claims. Callers get one
// signal; the underlying cause stays inside this package.
var ErrTokenMalformed = goerrors.New("could not validate token credentials", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeTokenMalformed)

// ErrInvalidIssuanceInput is a contract violation: issuing a token for an
// absent or structurally invalid identity. It fails the calling operation
// loudly instead of signing a token with an empty subject.
var ErrInvalidIssuanceInput = goerrors.New("cannot issue token for invalid identity", goerrors.CategoryBadInput).
	WithTextCode(TextCodeInvalidIssuance)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.TextCode == TextCodeTokenExpired
}

// IsMalformedError will check for unparseable or tampered tokens
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.TextCode == TextCodeTokenMalformed
}

// IsAuthenticationError reports whether err is the uniform login failure.
func IsAuthenticationError(err error) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.TextCode == TextCodeAuthenticationFailed
}
