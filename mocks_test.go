package worldclock_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	worldclock "github.com/goliatone/go-worldclock"
	repository "github.com/goliatone/go-repository-bun"
)

// MockIdentityProvider implements worldclock.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (worldclock.Identity, error) {
	args := m.Called(ctx, identifier, password)
	identity, _ := args.Get(0).(worldclock.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (worldclock.Identity, error) {
	args := m.Called(ctx, identifier)
	identity, _ := args.Get(0).(worldclock.Identity)
	return identity, args.Error(1)
}

// MockUserStore implements worldclock.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (*worldclock.User, error) {
	args := m.Called(ctx, identifier)
	user, _ := args.Get(0).(*worldclock.User)
	return user, args.Error(1)
}

// MockLogger implements worldclock.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// quietLogger swallows log output in tests that do not assert on it
type quietLogger struct{}

func (quietLogger) Debug(string, ...any) {}
func (quietLogger) Info(string, ...any)  {}
func (quietLogger) Warn(string, ...any)  {}
func (quietLogger) Error(string, ...any) {}

// TestIdentity is a plain Identity value for tests
type TestIdentity struct {
	id    string
	email string
}

func (i TestIdentity) ID() string    { return i.id }
func (i TestIdentity) Email() string { return i.email }

// testConfig implements worldclock.Config
type testConfig struct {
	signingKey      string
	tokenExpiration int
	issuer          string
	audience        []string
}

func (c testConfig) GetSigningKey() string    { return c.signingKey }
func (c testConfig) GetSigningMethod() string { return "HS256" }
func (c testConfig) GetContextKey() string    { return "user" }
func (c testConfig) GetTokenExpiration() int  { return c.tokenExpiration }
func (c testConfig) GetTokenLookup() string   { return "header:Authorization" }
func (c testConfig) GetAuthScheme() string    { return "Bearer" }
func (c testConfig) GetIssuer() string        { return c.issuer }
func (c testConfig) GetAudience() []string    { return c.audience }

func newTestConfig() testConfig {
	return testConfig{
		signingKey: "test-signing-key",
	}
}
