package worldclock_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worldclock "github.com/goliatone/go-worldclock"
)

func TestUserHasTimeZone(t *testing.T) {
	user := &worldclock.User{
		TimeZones: []string{"Europe/Madrid", "America/New_York"},
	}

	assert.True(t, user.HasTimeZone("Europe/Madrid"))
	assert.True(t, user.HasTimeZone("America/New_York"))
	assert.False(t, user.HasTimeZone("Asia/Tokyo"))
	assert.False(t, user.HasTimeZone("europe/madrid"))
}

func TestUserJSONNeverLeaksPasswordHash(t *testing.T) {
	user := &worldclock.User{
		ID:           uuid.New(),
		Email:        "person@example.com",
		PasswordHash: "$2a$14$secret",
		TimeZones:    []string{"Europe/Madrid"},
		Is12Hour:     true,
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, decoded, "password_hash")
	assert.Equal(t, "person@example.com", decoded["email"])
	assert.Equal(t, true, decoded["is12Hour"])
	assert.Equal(t, false, decoded["dateFormat"])
	assert.Contains(t, decoded, "timeZones")
}

func TestPreferencePatchIsZero(t *testing.T) {
	assert.True(t, worldclock.PreferencePatch{}.IsZero())

	zones := []string{"Europe/Madrid"}
	assert.False(t, worldclock.PreferencePatch{TimeZones: &zones}.IsZero())

	enabled := true
	assert.False(t, worldclock.PreferencePatch{Is12Hour: &enabled}.IsZero())
	assert.False(t, worldclock.PreferencePatch{DateFormat: &enabled}.IsZero())
}
