package worldclock

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// Stable text codes surfaced alongside structured errors so API clients can
// branch without parsing messages.
const (
	TextCodeInvalidCreds       = "INVALID_CREDENTIALS"
	TextCodeEmailTaken         = "EMAIL_TAKEN"
	TextCodeTimeZoneExists     = "TIMEZONE_EXISTS"
	TextCodeTimeZoneNotFound   = "TIMEZONE_NOT_FOUND"
	TextCodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	TextCodeTokenExpired       = "TOKEN_EXPIRED"
	TextCodeTokenMalformed     = "TOKEN_MALFORMED"
	TextCodeEmptyPassword      = "EMPTY_PASSWORD"
	TextCodeClaimsMappingError = "CLAIMS_MAPPING_ERROR"
)

// ErrIdentityNotFound is returned when a token or login identifier resolves
// to no stored account.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode(TextCodeAccountNotFound)

// ErrMismatchedHashAndPassword covers both unknown identifiers and bad
// passwords so login responses never reveal which one failed.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds)

// ErrEmailTaken is returned by registration when the email already exists.
var ErrEmailTaken = errors.New("this email is used", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken)

// ErrTimeZoneExists guards duplicate additions to the tracked zone list.
var ErrTimeZoneExists = errors.New("time zone already exists", errors.CategoryConflict).
	WithTextCode(TextCodeTimeZoneExists)

// ErrTimeZoneNotFound guards removals of zones that are not tracked.
var ErrTimeZoneNotFound = errors.New("there is no such time zone", errors.CategoryNotFound).
	WithTextCode(TextCodeTimeZoneNotFound)

// ErrTokenExpired is returned by token validation for expired tokens.
var ErrTokenExpired = errors.New("authentication token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenMalformed is returned by token validation for tokens that fail
// signature or structural checks.
var ErrTokenMalformed = errors.New("authentication token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed)

// ErrUnableToMapClaims means a validated token produced claims we could not
// convert into a session identity.
var ErrUnableToMapClaims = errors.New("unable to map claims", errors.CategoryAuth).
	WithTextCode(TextCodeClaimsMappingError)

// ErrNoEmptyString rejects empty passwords before hashing.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
