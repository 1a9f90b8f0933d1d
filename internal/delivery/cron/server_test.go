package cron

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	mockUsecase "khitma/internal/mocks/usecase"
	"khitma/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCronServer_Register(t *testing.T) {
	srv := newServer("*/5 * * * *", mockUsecase.NewMockSchedulerUsecase(t), discardLogger())

	require.NoError(t, srv.register())
	assert.Len(t, srv.cron.Entries(), len(schedule.Jobs()))
}

func TestCronServer_RegisterInvalidSpec(t *testing.T) {
	srv := newServer("every five minutes", mockUsecase.NewMockSchedulerUsecase(t), discardLogger())

	assert.Error(t, srv.register())
}

func TestCronServer_RunJob(t *testing.T) {
	schedUC := mockUsecase.NewMockSchedulerUsecase(t)
	srv := newServer("*/5 * * * *", schedUC, discardLogger())

	schedUC.EXPECT().
		RunJob(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) != ""
		}), schedule.JobNineAmNotifications, usecase.RunOptions{}).
		Return(&entity.RunReport{RunID: "r1", Job: schedule.JobNineAmNotifications}, nil).
		Once()
	schedUC.EXPECT().
		RunJob(mock.Anything, schedule.JobEveningReminders, usecase.RunOptions{}).
		Return(nil, errors.New("lease backend down")).
		Once()

	srv.runJob(schedule.JobNineAmNotifications)
	srv.runJob(schedule.JobEveningReminders)
}

func TestCronServer_ServeAndStop(t *testing.T) {
	srv := newServer("*/5 * * * *", mockUsecase.NewMockSchedulerUsecase(t), discardLogger())
	require.NoError(t, srv.register())

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	require.NoError(t, srv.stop(context.Background()))
	assert.NoError(t, <-served)
	assert.Error(t, srv.baseCtx.Err())
	// A second stop is a no-op.
	assert.NoError(t, srv.stop(context.Background()))
}
