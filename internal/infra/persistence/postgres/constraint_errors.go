package postgres

import (
	"strings"
	"time"

	"khitma/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Without TranslateError the driver error text is all we have (23505 unique_violation).
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "23503")
}

// dateParam renders a local date for a 'date' column. Binding the time.Time directly
// would let the session timezone shift the day.
func dateParam(date time.Time) string {
	return date.UTC().Format(time.DateOnly)
}

// toLocalDate normalizes a scanned 'date' value to 00:00 UTC of the same civil date.
func toLocalDate(date time.Time) time.Time {
	y, m, d := date.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
