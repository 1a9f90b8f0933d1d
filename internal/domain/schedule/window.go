// Package schedule decides when the timezone-aware jobs are due.
// Everything here is pure: the caller supplies the current instant.
package schedule

import (
	"time"

	"khitma/internal/errors"
)

// DefaultTolerance is the half-width of a window around the target hour.
const DefaultTolerance = 5 * time.Minute

var (
	// ErrInvalidTimezone is returned for identifiers the tz database does not know.
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrInvalidTargetHour is returned for hours outside 0..23.
	ErrInvalidTargetHour = errors.New("target hour must be between 0 and 23")
)

// LoadLocation resolves an IANA timezone. "Local" is rejected so results never depend on the host.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return nil, errors.Wrapf(ErrInvalidTimezone, "%q", timezone)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTimezone, "%q: %v", timezone, err)
	}

	return loc, nil
}

// LocalNow converts now to the wall clock of timezone.
func LocalNow(timezone string, now time.Time) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	return now.In(loc), nil
}

// LocalDate returns the civil date of a local time as 00:00 UTC of that date.
// This is the representation used for every date column.
func LocalDate(local time.Time) time.Time {
	y, m, d := local.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalInstant returns hour:00:00 on the same calendar date as local, in local's location.
func LocalInstant(local time.Time, hour int) time.Time {
	y, m, d := local.Date()

	return time.Date(y, m, d, hour, 0, 0, 0, local.Location())
}

// IsWithinWindow reports whether now, seen from timezone, is within tolerance of
// targetHour:00 on the current local date. The distance is measured in whole minutes,
// truncated, so 5m59s counts as 5 minutes. The window never wraps into the previous
// or next day: 23:58 is outside the 00:00 window.
func IsWithinWindow(timezone string, targetHour int, tolerance time.Duration, now time.Time) (bool, error) {
	if targetHour < 0 || targetHour > 23 {
		return false, errors.Wrapf(ErrInvalidTargetHour, "got %d", targetHour)
	}

	local, err := LocalNow(timezone, now)
	if err != nil {
		return false, err
	}

	return WithinWindowAt(local, targetHour, tolerance), nil
}

// WithinWindowAt is IsWithinWindow for an already converted local time.
func WithinWindowAt(local time.Time, targetHour int, tolerance time.Duration) bool {
	diff := local.Sub(LocalInstant(local, targetHour))
	if diff < 0 {
		diff = -diff
	}

	return int64(diff/time.Minute) <= int64(tolerance/time.Minute)
}
