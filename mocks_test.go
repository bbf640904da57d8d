package auth_test

import (
	"context"
	"fmt"

	"github.com/averix/auth"
	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider implements auth.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) FindIdentityByEmail(ctx context.Context, email string) (auth.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(auth.Identity), args.Error(1)
}

// TestIdentity is a simple implementation of Identity interface for testing
type TestIdentity struct {
	email string
	salt  string
	hash  string
}

func (t TestIdentity) Email() string        { return t.email }
func (t TestIdentity) Salt() string         { return t.salt }
func (t TestIdentity) PasswordHash() string { return t.hash }

// testLogger swallows log output so failure-path tests stay quiet
type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Info(string, ...any)  {}
func (testLogger) Error(string, ...any) {}

// recordingLogger captures formatted lines for assertions on log output
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debug(format string, args ...any) { l.record(format, args...) }
func (l *recordingLogger) Info(format string, args ...any)  { l.record(format, args...) }
func (l *recordingLogger) Error(format string, args ...any) { l.record(format, args...) }

func (l *recordingLogger) record(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func testConfig() auth.SimpleConfig {
	return auth.SimpleConfig{
		SigningKey:      "test-signing-key-0123456789",
		Audience:        []string{"app:auth"},
		TokenExpiration: 30,
	}
}
