package worldclock_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worldclock "github.com/goliatone/go-worldclock"
)

func TestPreferenceServiceAddTimeZone(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := worldclock.NewUsersRepository(db)
	prefs := worldclock.NewPreferenceService(repo).WithLogger(quietLogger{})

	user := seedUser(t, repo, "person@example.com", "password123")

	t.Run("appends in insertion order", func(t *testing.T) {
		updated, err := prefs.AddTimeZone(ctx, user.ID, "Europe/Madrid")
		require.NoError(t, err)
		assert.Equal(t, []string{"Europe/Madrid"}, updated.TimeZones)

		updated, err = prefs.AddTimeZone(ctx, user.ID, "Asia/Tokyo")
		require.NoError(t, err)
		assert.Equal(t, []string{"Europe/Madrid", "Asia/Tokyo"}, updated.TimeZones)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := prefs.AddTimeZone(ctx, user.ID, "Europe/Madrid")
		require.ErrorIs(t, err, worldclock.ErrTimeZoneExists)
	})

	t.Run("rejects empty zone", func(t *testing.T) {
		_, err := prefs.AddTimeZone(ctx, user.ID, "   ")
		require.Error(t, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := prefs.AddTimeZone(ctx, uuid.New(), "Europe/Madrid")
		require.ErrorIs(t, err, worldclock.ErrIdentityNotFound)
	})
}

func TestPreferenceServiceRemoveTimeZone(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := worldclock.NewUsersRepository(db)
	prefs := worldclock.NewPreferenceService(repo).WithLogger(quietLogger{})

	user := seedUser(t, repo, "person@example.com", "password123",
		"Europe/Madrid", "Asia/Tokyo", "America/New_York")

	t.Run("preserves order of the remaining zones", func(t *testing.T) {
		updated, err := prefs.RemoveTimeZone(ctx, user.ID, "Asia/Tokyo")
		require.NoError(t, err)
		assert.Equal(t, []string{"Europe/Madrid", "America/New_York"}, updated.TimeZones)
	})

	t.Run("rejects zones that are not tracked", func(t *testing.T) {
		_, err := prefs.RemoveTimeZone(ctx, user.ID, "Asia/Tokyo")
		require.ErrorIs(t, err, worldclock.ErrTimeZoneNotFound)
	})
}

func TestPreferenceServiceToggles(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := worldclock.NewUsersRepository(db)
	prefs := worldclock.NewPreferenceService(repo).WithLogger(quietLogger{})

	user := seedUser(t, repo, "person@example.com", "password123")

	t.Run("hour format", func(t *testing.T) {
		updated, err := prefs.SetIs12Hour(ctx, user.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.Is12Hour)

		// writing the same value again is a no-op, not an error
		updated, err = prefs.SetIs12Hour(ctx, user.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.Is12Hour)
	})

	t.Run("date format", func(t *testing.T) {
		updated, err := prefs.SetDateFormat(ctx, user.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.DateFormat)

		updated, err = prefs.SetDateFormat(ctx, user.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.DateFormat)
	})

	t.Run("toggles do not touch the zone list", func(t *testing.T) {
		_, err := prefs.AddTimeZone(ctx, user.ID, "Europe/Madrid")
		require.NoError(t, err)

		updated, err := prefs.SetIs12Hour(ctx, user.ID, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"Europe/Madrid"}, updated.TimeZones)
	})
}
