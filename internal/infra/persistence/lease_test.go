package persistence

import (
	"context"
	"testing"

	"khitma/config"
	"khitma/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewJobLockRepository(t *testing.T) {
	newParams := func(backend string) JobLockParams {
		cfg := &config.Config{Scheduler: &config.SchedulerConfig{LockBackend: backend}}

		return JobLockParams{Ctx: context.Background(), Config: cfg, DB: &gorm.DB{}}
	}

	t.Run("postgres by default", func(t *testing.T) {
		repo, err := NewJobLockRepository(JobLockParams{Ctx: context.Background(), Config: &config.Config{}, DB: &gorm.DB{}})
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("dynamo requires its section", func(t *testing.T) {
		_, err := NewJobLockRepository(newParams(constants.LockBackendDynamo))
		assert.ErrorContains(t, err, "dynamo config is required")
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewJobLockRepository(newParams("etcd"))
		assert.ErrorContains(t, err, `unknown lock backend "etcd"`)
	})
}
