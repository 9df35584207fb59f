package worldclock_test

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	worldclock "github.com/goliatone/go-worldclock"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.Error
		category errors.Category
		textCode string
	}{
		{
			name:     "identity not found",
			err:      worldclock.ErrIdentityNotFound,
			category: errors.CategoryNotFound,
			textCode: worldclock.TextCodeAccountNotFound,
		},
		{
			name:     "mismatched hash and password",
			err:      worldclock.ErrMismatchedHashAndPassword,
			category: errors.CategoryAuth,
			textCode: worldclock.TextCodeInvalidCreds,
		},
		{
			name:     "email taken",
			err:      worldclock.ErrEmailTaken,
			category: errors.CategoryConflict,
			textCode: worldclock.TextCodeEmailTaken,
		},
		{
			name:     "time zone exists",
			err:      worldclock.ErrTimeZoneExists,
			category: errors.CategoryConflict,
			textCode: worldclock.TextCodeTimeZoneExists,
		},
		{
			name:     "time zone not found",
			err:      worldclock.ErrTimeZoneNotFound,
			category: errors.CategoryNotFound,
			textCode: worldclock.TextCodeTimeZoneNotFound,
		},
		{
			name:     "token expired",
			err:      worldclock.ErrTokenExpired,
			category: errors.CategoryAuth,
			textCode: worldclock.TextCodeTokenExpired,
		},
		{
			name:     "token malformed",
			err:      worldclock.ErrTokenMalformed,
			category: errors.CategoryAuth,
			textCode: worldclock.TextCodeTokenMalformed,
		},
		{
			name:     "empty password",
			err:      worldclock.ErrNoEmptyString,
			category: errors.CategoryValidation,
			textCode: worldclock.TextCodeEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.textCode, tt.err.TextCode)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestIsTokenExpiredError(t *testing.T) {
	assert.False(t, worldclock.IsTokenExpiredError(nil))
	assert.True(t, worldclock.IsTokenExpiredError(worldclock.ErrTokenExpired))
	assert.True(t, worldclock.IsTokenExpiredError(fmt.Errorf("jwt: token is expired")))
	assert.False(t, worldclock.IsTokenExpiredError(worldclock.ErrTokenMalformed))
}

func TestIsMalformedError(t *testing.T) {
	assert.False(t, worldclock.IsMalformedError(nil))
	assert.True(t, worldclock.IsMalformedError(worldclock.ErrTokenMalformed))
	assert.True(t, worldclock.IsMalformedError(fmt.Errorf("jwt: token is malformed")))
	assert.True(t, worldclock.IsMalformedError(fmt.Errorf("missing or malformed JWT")))
	assert.False(t, worldclock.IsMalformedError(worldclock.ErrTokenExpired))
}
