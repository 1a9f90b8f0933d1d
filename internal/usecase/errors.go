package usecase

import (
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/errors"
)

var (
	// ErrNoActiveVerses is returned when the catalog has nothing to assign.
	ErrNoActiveVerses = domainerrors.ErrNoActiveVerses
	// ErrNoVerseAssigned is returned when a user has no usable verse for the date.
	ErrNoVerseAssigned = errors.New("no verse assigned for date")
	// ErrInvalidTimezone is returned for a timezone the tz database does not know.
	ErrInvalidTimezone = domainerrors.ErrInvalidTimezone
	// ErrInvalidPushJob is returned for push jobs that can never be delivered.
	ErrInvalidPushJob = errors.New("invalid push job")
)
