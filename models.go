package worldclock

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the account model. Email is unique and immutable after creation;
// the password hash never serializes to JSON. TimeZones keeps insertion
// order and carries no duplicates (guarded by PreferenceService, not by a
// storage constraint).
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	TimeZones     []string   `bun:"time_zones" json:"timeZones"`
	Is12Hour      bool       `bun:"is_12_hour" json:"is12Hour"`
	DateFormat    bool       `bun:"date_format" json:"dateFormat"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdOn,omitempty"`
}

// HasTimeZone reports whether zone is already tracked.
func (u *User) HasTimeZone(zone string) bool {
	for _, z := range u.TimeZones {
		if z == zone {
			return true
		}
	}
	return false
}

// PreferencePatch carries the preference fields to persist. Nil fields are
// left untouched; the whole patch is applied in a single statement.
type PreferencePatch struct {
	TimeZones  *[]string
	Is12Hour   *bool
	DateFormat *bool
}

// IsZero reports whether the patch would change nothing.
func (p PreferencePatch) IsZero() bool {
	return p.TimeZones == nil && p.Is12Hour == nil && p.DateFormat == nil
}
