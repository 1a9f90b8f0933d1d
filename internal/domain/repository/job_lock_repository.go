package repository

import (
	"context"

	"khitma/internal/domain/entity"
)

// JobLockRepository implements the cross-process lease that keeps runs of a job from overlapping.
type JobLockRepository interface {
	// Acquire takes the lease for lease.JobName unless an unexpired lease is held.
	// A lease whose ExpiresAt is before lease.AcquiredAt is reclaimed.
	Acquire(ctx context.Context, lease *entity.JobLease) (bool, error)

	// Release drops the lease if it is still owned by owner.
	Release(ctx context.Context, jobName, owner string) error
}
