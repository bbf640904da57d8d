package auth

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

const saltByteLen = 16

// PasswordUpdate carries the salt and hash pair produced at account creation
// or password change time. Both values live on the user record.
type PasswordUpdate struct {
	Salt string `json:"salt"`
	Hash string `json:"password"`
}

var _ CredentialHasher = (*BcryptHasher)(nil)

// BcryptHasher implements CredentialHasher backed by bcrypt
type BcryptHasher struct {
	cost int
}

// HasherOption configures a BcryptHasher
type HasherOption func(*BcryptHasher)

// WithCost sets the bcrypt cost factor, bounded to the algorithm's range.
func WithCost(cost int) HasherOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher returns a CredentialHasher backed by bcrypt
func NewBcryptHasher(opts ...HasherOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateSalt produces random salt material, text encoded. Every call draws
// fresh bytes, so no two users and no two password resets share a salt.
func (h *BcryptHasher) GenerateSalt() (string, error) {
	buf := make([]byte, saltByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawStdEncoding.EncodeToString(buf), nil
}

// HashPassword will generate a hash for the password and salt pair. bcrypt
// embeds its own random component, so two calls with identical input produce
// different bytes; both verify against that input. Never compare hashes for
// byte equality, use VerifyPassword.
func (h *BcryptHasher) HashPassword(password, salt string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), h.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Compare validates the password and salt pair against the stored hash using
// bcrypt's comparison, which runs in time independent of where a mismatch
// occurs. A structurally broken stored hash reads as a mismatch, not a crash.
func (h *BcryptHasher) Compare(password, salt, hashedPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password+salt)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}

// VerifyPassword is the boolean form of Compare.
func (h *BcryptHasher) VerifyPassword(password, salt, hashedPassword string) bool {
	return h.Compare(password, salt, hashedPassword) == nil
}

// CreateSaltAndHashedPassword composes GenerateSalt and HashPassword for
// account creation and password change flows.
func (h *BcryptHasher) CreateSaltAndHashedPassword(password string) (PasswordUpdate, error) {
	salt, err := h.GenerateSalt()
	if err != nil {
		return PasswordUpdate{}, err
	}

	hash, err := h.HashPassword(password, salt)
	if err != nil {
		return PasswordUpdate{}, err
	}

	return PasswordUpdate{Salt: salt, Hash: hash}, nil
}
