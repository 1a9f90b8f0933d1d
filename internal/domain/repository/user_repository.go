package repository

import (
	"context"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read-only user directory.
type UserRepository interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsersByIDs retrieves the existing users among ids.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)
}
