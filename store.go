package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var _ IdentityProvider = (*UsersStore)(nil)

// UsersStore is a Bun backed IdentityProvider plus the write operations that
// need a fresh salt and hash pair: registration and password change. Hosts
// with their own persistence only implement IdentityProvider; this store is
// the reference collaborator.
type UsersStore struct {
	db     *bun.DB
	hasher CredentialHasher
	logger Logger
}

// NewUsersStore will create a users store backed by the given database. A
// nil hasher falls back to bcrypt defaults.
func NewUsersStore(db *bun.DB, hasher CredentialHasher) *UsersStore {
	if hasher == nil {
		hasher = NewBcryptHasher()
	}
	return &UsersStore{
		db:     db,
		hasher: hasher,
		logger: defLogger{},
	}
}

// WithLogger replaces the store logger.
func (s *UsersStore) WithLogger(logger Logger) *UsersStore {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// FindIdentityByEmail implements IdentityProvider.
func (s *UsersStore) FindIdentityByEmail(ctx context.Context, email string) (Identity, error) {
	user := new(User)

	err := s.db.NewSelect().
		Model(user).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user by email")
	}

	return NewIdentityFromUser(user), nil
}

// Register creates a user record with a fresh salt and hash pair.
func (s *UsersStore) Register(ctx context.Context, email, password string) (*User, error) {
	update, err := s.hasher.CreateSaltAndHashedPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to derive password hash")
	}

	now := time.Now()
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Salt:         update.Salt,
		PasswordHash: update.Hash,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}

	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		s.logger.Error("Register insert user error: %v", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to insert user")
	}

	return user, nil
}

// SetPassword replaces the user's salt and hash pair. Salts are never reused
// across resets.
func (s *UsersStore) SetPassword(ctx context.Context, user *User, password string) error {
	if user == nil {
		return errors.New("user is required", errors.CategoryBadInput)
	}

	update, err := s.hasher.CreateSaltAndHashedPassword(password)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to derive password hash")
	}

	now := time.Now()
	user.Salt = update.Salt
	user.PasswordHash = update.Hash
	user.UpdatedAt = &now

	_, err = s.db.NewUpdate().
		Model(user).
		Column("salt", "password_hash", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		s.logger.Error("SetPassword update user error: %v", err)
		return errors.Wrap(err, errors.CategoryInternal, "failed to update user password")
	}

	return nil
}
