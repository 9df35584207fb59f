package worldclock_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worldclock "github.com/goliatone/go-worldclock"
	repository "github.com/goliatone/go-repository-bun"
)

func TestUserProviderVerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("successful verification", func(t *testing.T) {
		store := new(MockUserStore)
		provider := worldclock.NewUserProvider(store).WithLogger(quietLogger{})

		userID := uuid.New()
		passwordHash, _ := worldclock.HashPassword("password123")
		user := &worldclock.User{
			ID:           userID,
			Email:        "person@example.com",
			PasswordHash: passwordHash,
		}

		store.On("GetByIdentifier", ctx, "person@example.com").Return(user, nil).Once()

		identity, err := provider.VerifyIdentity(ctx, "person@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, userID.String(), identity.ID())
		assert.Equal(t, "person@example.com", identity.Email())

		store.AssertExpectations(t)
	})

	t.Run("unknown identifier maps to credentials error", func(t *testing.T) {
		store := new(MockUserStore)
		provider := worldclock.NewUserProvider(store).WithLogger(quietLogger{})

		store.On("GetByIdentifier", ctx, "missing@example.com").
			Return(nil, repository.NewRecordNotFound()).Once()

		_, err := provider.VerifyIdentity(ctx, "missing@example.com", "password123")
		require.ErrorIs(t, err, worldclock.ErrMismatchedHashAndPassword)
	})

	t.Run("wrong password maps to credentials error", func(t *testing.T) {
		store := new(MockUserStore)
		provider := worldclock.NewUserProvider(store).WithLogger(quietLogger{})

		passwordHash, _ := worldclock.HashPassword("password123")
		user := &worldclock.User{
			ID:           uuid.New(),
			Email:        "person@example.com",
			PasswordHash: passwordHash,
		}

		store.On("GetByIdentifier", ctx, "person@example.com").Return(user, nil).Once()

		_, err := provider.VerifyIdentity(ctx, "person@example.com", "wrong-password")
		require.ErrorIs(t, err, worldclock.ErrMismatchedHashAndPassword)
	})
}

func TestUserProviderFindIdentityByIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("user found", func(t *testing.T) {
		store := new(MockUserStore)
		provider := worldclock.NewUserProvider(store)

		userID := uuid.New()
		user := &worldclock.User{
			ID:    userID,
			Email: "person@example.com",
		}

		store.On("GetByIdentifier", ctx, userID.String()).Return(user, nil).Once()

		identity, err := provider.FindIdentityByIdentifier(ctx, userID.String())
		require.NoError(t, err)
		assert.Equal(t, userID.String(), identity.ID())
	})

	t.Run("lookup error is passed through", func(t *testing.T) {
		store := new(MockUserStore)
		provider := worldclock.NewUserProvider(store)

		notFound := repository.NewRecordNotFound()
		store.On("GetByIdentifier", ctx, "missing").Return(nil, notFound).Once()

		_, err := provider.FindIdentityByIdentifier(ctx, "missing")
		require.Error(t, err)
	})
}
