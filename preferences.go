package worldclock

import (
	"context"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	repository "github.com/goliatone/go-repository-bun"
)

// PreferenceService mutates the per account display preferences: the
// tracked time zone list and the two clock formatting toggles. Every
// method persists through a single preference patch and returns the
// updated account.
type PreferenceService struct {
	repo   Users
	logger Logger
}

func NewPreferenceService(repo Users) *PreferenceService {
	return &PreferenceService{
		repo:   repo,
		logger: defLogger{},
	}
}

func (p *PreferenceService) WithLogger(l Logger) *PreferenceService {
	p.logger = l
	return p
}

// AddTimeZone appends zone to the account's list. The list keeps insertion
// order and rejects duplicates with an exact string match, no IANA
// validation happens here.
func (p *PreferenceService) AddTimeZone(ctx context.Context, userID uuid.UUID, zone string) (*User, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return nil, errors.New("time zone must not be empty", errors.CategoryValidation)
	}

	user, err := p.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasTimeZone(zone) {
		return nil, ErrTimeZoneExists
	}

	zones := append(append([]string(nil), user.TimeZones...), zone)

	return p.repo.UpdatePreferences(ctx, userID, PreferencePatch{
		TimeZones: &zones,
	})
}

// RemoveTimeZone drops zone from the list, preserving the order of the
// remaining entries.
func (p *PreferenceService) RemoveTimeZone(ctx context.Context, userID uuid.UUID, zone string) (*User, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return nil, errors.New("time zone must not be empty", errors.CategoryValidation)
	}

	user, err := p.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.HasTimeZone(zone) {
		return nil, ErrTimeZoneNotFound
	}

	zones := make([]string, 0, len(user.TimeZones)-1)
	for _, z := range user.TimeZones {
		if z != zone {
			zones = append(zones, z)
		}
	}

	return p.repo.UpdatePreferences(ctx, userID, PreferencePatch{
		TimeZones: &zones,
	})
}

// SetIs12Hour stores the hour format toggle. Writing the current value is
// a no-op at the data level but still returns the account.
func (p *PreferenceService) SetIs12Hour(ctx context.Context, userID uuid.UUID, enabled bool) (*User, error) {
	return p.repo.UpdatePreferences(ctx, userID, PreferencePatch{
		Is12Hour: &enabled,
	})
}

// SetDateFormat stores the date format toggle.
func (p *PreferenceService) SetDateFormat(ctx context.Context, userID uuid.UUID, enabled bool) (*User, error) {
	return p.repo.UpdatePreferences(ctx, userID, PreferencePatch{
		DateFormat: &enabled,
	})
}

func (p *PreferenceService) getUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := p.repo.GetByID(ctx, userID.String())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load user preferences")
	}
	return user, nil
}
