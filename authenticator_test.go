package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/averix/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuther(t *testing.T, provider auth.IdentityProvider) *auth.Auther {
	t.Helper()

	auther, err := auth.NewAuthenticator(provider, testConfig())
	require.NoError(t, err)

	return auther.
		WithLogger(testLogger{}).
		WithHasher(auth.NewBcryptHasher(auth.WithCost(4)))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptHasher(auth.WithCost(4))

	update, err := hasher.CreateSaltAndHashedPassword("correct-password")
	require.NoError(t, err)

	identity := TestIdentity{
		email: "a@example.com",
		salt:  update.Salt,
		hash:  update.Hash,
	}

	t.Run("successful login", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByEmail", ctx, "a@example.com").Return(identity, nil)

		auther := newTestAuther(t, provider)

		token, err := auther.Login(ctx, "a@example.com", "correct-password")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		subject, err := auther.SubjectFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", subject)

		provider.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByEmail", ctx, "ghost@example.com").Return(nil, auth.ErrIdentityNotFound)
		provider.On("FindIdentityByEmail", ctx, "a@example.com").Return(identity, nil)

		auther := newTestAuther(t, provider)

		_, unknownErr := auther.Login(ctx, "ghost@example.com", "whatever")
		_, wrongErr := auther.Login(ctx, "a@example.com", "wrong-password")

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr, wrongErr)
		assert.True(t, auth.IsAuthenticationError(unknownErr))
		assert.True(t, auth.IsAuthenticationError(wrongErr))
	})

	t.Run("provider failure is not an authentication failure", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByEmail", ctx, "a@example.com").Return(nil, errors.New("connection reset"))

		auther := newTestAuther(t, provider)

		_, err := auther.Login(ctx, "a@example.com", "correct-password")
		require.Error(t, err)
		assert.False(t, auth.IsAuthenticationError(err))
	})

	t.Run("nil identity from provider", func(t *testing.T) {
		provider := new(MockIdentityProvider)
		provider.On("FindIdentityByEmail", ctx, "a@example.com").Return(nil, nil)

		auther := newTestAuther(t, provider)

		_, err := auther.Login(ctx, "a@example.com", "correct-password")
		require.Error(t, err)
		assert.True(t, auth.IsAuthenticationError(err))
	})
}

func TestLogMessagesFormatCleanly(t *testing.T) {
	ctx := context.Background()

	provider := new(MockIdentityProvider)
	provider.On("FindIdentityByEmail", ctx, "ghost@example.com").Return(nil, auth.ErrIdentityNotFound)

	logger := &recordingLogger{}

	auther, err := auth.NewAuthenticator(provider, testConfig())
	require.NoError(t, err)
	auther.WithLogger(logger)

	_, err = auther.Login(ctx, "ghost@example.com", "whatever")
	require.Error(t, err)

	_, err = auther.SubjectFromToken("not-a-token")
	require.Error(t, err)

	require.NotEmpty(t, logger.lines)
	for _, line := range logger.lines {
		assert.NotContains(t, line, "%!")
	}
}

func TestSessionFromToken(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptHasher(auth.WithCost(4))

	update, err := hasher.CreateSaltAndHashedPassword("correct-password")
	require.NoError(t, err)

	identity := TestIdentity{
		email: "a@example.com",
		salt:  update.Salt,
		hash:  update.Hash,
	}

	provider := new(MockIdentityProvider)
	provider.On("FindIdentityByEmail", ctx, "a@example.com").Return(identity, nil)

	auther := newTestAuther(t, provider)

	token, err := auther.Login(ctx, "a@example.com", "correct-password")
	require.NoError(t, err)

	session, err := auther.SessionFromToken(token)
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", session.GetSubject())
	assert.Equal(t, []string{"app:auth"}, session.GetAudience())
	require.NotNil(t, session.GetIssuedAt())
	require.NotNil(t, session.GetExpiration())
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *session.GetExpiration(), time.Minute)

	t.Run("invalid token", func(t *testing.T) {
		_, err := auther.SessionFromToken("garbage")
		assert.Error(t, err)
	})

	t.Run("identity from session", func(t *testing.T) {
		resolved, err := auther.IdentityFromSession(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", resolved.Email())
	})
}
