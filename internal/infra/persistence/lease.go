// Package persistence selects storage backends that have more than one implementation.
package persistence

import (
	"context"

	"khitma/config"
	"khitma/internal/domain/constants"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/infra/persistence/dynamo"
	"khitma/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// JobLockParams defines the dependencies of the lease backend.
type JobLockParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	DB     *gorm.DB
}

// NewJobLockRepository returns the lease named by scheduler.lockBackend.
func NewJobLockRepository(params JobLockParams) (repository.JobLockRepository, error) {
	backend := constants.LockBackendPostgres
	if params.Config.Scheduler != nil && params.Config.Scheduler.LockBackend != "" {
		backend = params.Config.Scheduler.LockBackend
	}

	switch backend {
	case constants.LockBackendPostgres:
		return postgres.NewJobLockRepository(params.DB), nil
	case constants.LockBackendDynamo:
		return dynamo.NewJobLockRepository(params.Ctx, params.Config.Dynamo)
	default:
		return nil, errors.Errorf("unknown lock backend %q", backend)
	}
}
