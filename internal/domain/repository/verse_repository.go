package repository

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for verse persistence.
var (
	// ErrVerseNotFound is returned when a verse does not exist.
	ErrVerseNotFound = errors.New("verse not found")
	// ErrAssignmentNotFound is returned when a user has no verse for a date.
	ErrAssignmentNotFound = errors.New("verse assignment not found")
)

// VerseRepository reads and maintains the verse catalog.
type VerseRepository interface {
	// FindActiveVerseIDs returns the IDs of all assignable verses.
	FindActiveVerseIDs(ctx context.Context) ([]uuid.UUID, error)

	// FindVerseByID retrieves a verse, active or not.
	FindVerseByID(ctx context.Context, id uuid.UUID) (*entity.Verse, error)

	// UpsertVerses inserts or updates verses keyed by (surah_number, ayah_number)
	// and returns the number of rows written.
	UpsertVerses(ctx context.Context, verses []*entity.Verse) (int64, error)
}

// AssignmentRepository persists the per-user, per-date verse assignments.
type AssignmentRepository interface {
	// FindAssignment returns the assignment of a user on a local date.
	FindAssignment(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.VerseAssignment, error)

	// FindSeenVerseIDs returns every verse ever assigned to the user.
	FindSeenVerseIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// DeleteAssignmentsByUser wipes the user's assignment history.
	DeleteAssignmentsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// CreateAssignment inserts the assignment unless one already exists for the user and date.
	// It reports whether the row was created.
	CreateAssignment(ctx context.Context, assignment *entity.VerseAssignment) (bool, error)
}
