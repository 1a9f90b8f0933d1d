package impl

import (
	"context"
	"testing"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
	mockRepo "khitma/internal/mocks/repository"
	mockSvc "khitma/internal/mocks/service"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushDeliveryServiceFixtures struct {
	service       *pushDeliveryService
	gateway       *mockSvc.MockPushGateway
	deviceRepo    *mockRepo.MockDeviceRepository
	pushEventRepo *mockRepo.MockPushEventRepository
	slept         *[]time.Duration
}

func createTestPushDeliveryService(t *testing.T) pushDeliveryServiceFixtures {
	gateway := mockSvc.NewMockPushGateway(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushEventRepo := mockRepo.NewMockPushEventRepository(t)

	service := NewPushDeliveryService(PushDeliveryServiceParams{
		Config:        newTestConfig(),
		Gateway:       gateway,
		DeviceRepo:    deviceRepo,
		PushEventRepo: pushEventRepo,
		Logger:        newDiscardLogger(),
	}).(*pushDeliveryService)

	slept := &[]time.Duration{}
	service.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}

	return pushDeliveryServiceFixtures{
		service:       service,
		gateway:       gateway,
		deviceRepo:    deviceRepo,
		pushEventRepo: pushEventRepo,
		slept:         slept,
	}
}

func testPushJob(userID uuid.UUID, tokens ...string) *service.PushJob {
	return &service.PushJob{
		JobID:            uuid.NewString(),
		NotificationID:   uuid.NewString(),
		UserID:           userID.String(),
		NotificationType: string(entity.NotificationTypeMotivational),
		Tokens:           tokens,
		Title:            "Motivational verse today",
		Body:             "body",
		Data:             map[string]any{"type": "motivational_verse", "surah_number": 2},
	}
}

func devicesWithTokens(userID uuid.UUID, tokens ...string) []*entity.DeviceRegistration {
	devices := make([]*entity.DeviceRegistration, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.DeviceRegistration{UserID: userID, DeviceToken: token})
	}

	return devices
}

func TestPushDeliveryService_Deliver_Success(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	job := testPushJob(userID, "token-a", "token-b", "token-stale")

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, "token-a", "token-b"), nil)
	fx.gateway.EXPECT().
		SendToTokens(ctx, []string{"token-a", "token-b"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == job.Title && msg.Data["type"] == "motivational_verse" && msg.Data["surah_number"] == "2"
		})).
		Return(&service.PushBatchResult{SuccessCount: 2}, nil)
	fx.pushEventRepo.EXPECT().
		BatchCreatePushEvents(ctx, mock.MatchedBy(func(events []*entity.PushEvent) bool {
			return len(events) == 2 &&
				events[0].Event == entity.PushEventSent &&
				events[0].NotificationID != nil &&
				events[0].NotificationID.String() == job.NotificationID
		})).
		Return(nil)

	result, err := fx.service.Deliver(ctx, job)

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Empty(t, *fx.slept)
}

func TestPushDeliveryService_Deliver_WaitsForDeliverAfter(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	job := testPushJob(userID, "token-a")
	job.DeliverAfter = time.Now().Add(20 * time.Second)

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, "token-a"), nil)
	fx.gateway.EXPECT().SendToTokens(ctx, []string{"token-a"}, mock.Anything).Return(&service.PushBatchResult{SuccessCount: 1}, nil)
	fx.pushEventRepo.EXPECT().BatchCreatePushEvents(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Deliver(ctx, job)

	require.NoError(t, err)
	require.Len(t, *fx.slept, 1)
	assert.LessOrEqual(t, (*fx.slept)[0], 20*time.Second)
	assert.Greater(t, (*fx.slept)[0], 15*time.Second)
}

func TestPushDeliveryService_Deliver_WaitIsCapped(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	job := testPushJob(userID, "token-a")
	job.DeliverAfter = time.Now().Add(time.Hour)

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, "token-a"), nil)
	fx.gateway.EXPECT().SendToTokens(ctx, []string{"token-a"}, mock.Anything).Return(&service.PushBatchResult{SuccessCount: 1}, nil)
	fx.pushEventRepo.EXPECT().BatchCreatePushEvents(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Deliver(ctx, job)

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Minute}, *fx.slept)
}

func TestPushDeliveryService_Deliver_RemovesInvalidTokens(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	job := testPushJob(userID, "token-a", "token-dead")

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, "token-a", "token-dead"), nil)
	fx.gateway.EXPECT().SendToTokens(ctx, []string{"token-a", "token-dead"}, mock.Anything).Return(&service.PushBatchResult{
		SuccessCount: 1,
		FailureCount: 1,
		Failures: []service.TokenFailure{
			{Token: "token-dead", Err: errors.New("registration-token-not-registered"), Invalid: true},
		},
	}, nil)
	fx.pushEventRepo.EXPECT().
		BatchCreatePushEvents(ctx, mock.MatchedBy(func(events []*entity.PushEvent) bool {
			return len(events) == 2 &&
				events[0].Event == entity.PushEventSent &&
				events[1].Event == entity.PushEventError &&
				events[1].ErrorMessage == "registration-token-not-registered"
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().DeleteDevicesByTokens(ctx, []string{"token-dead"}).Return(int64(1), nil)

	result, err := fx.service.Deliver(ctx, job)

	require.NoError(t, err)
	assert.Equal(t, 1, result.FailureCount)
}

func TestPushDeliveryService_Deliver_GatewayErrorIsNotRetried(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()
	job := testPushJob(userID, "token-a")

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, "token-a"), nil)
	fx.gateway.EXPECT().SendToTokens(ctx, []string{"token-a"}, mock.Anything).Return(nil, errors.New("provider unavailable"))
	fx.pushEventRepo.EXPECT().
		BatchCreatePushEvents(ctx, mock.MatchedBy(func(events []*entity.PushEvent) bool {
			return len(events) == 1 && events[0].Event == entity.PushEventError
		})).
		Return(errors.New("database error"))

	result, err := fx.service.Deliver(ctx, job)

	require.NoError(t, err)
	assert.Equal(t, 1, result.FailureCount)
	assert.Empty(t, result.InvalidTokens())
}

func TestPushDeliveryService_Deliver_DeviceLookupErrorIsRetryable(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("database error"))

	result, err := fx.service.Deliver(ctx, testPushJob(userID, "token-a"))

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to find devices")
}

func TestPushDeliveryService_Deliver_AllTokensUnregistered(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)

	result, err := fx.service.Deliver(ctx, testPushJob(userID, "token-a"))

	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
}

func TestPushDeliveryService_Deliver_InvalidJob(t *testing.T) {
	fx := createTestPushDeliveryService(t)

	job := testPushJob(uuid.New(), "token-a")
	job.UserID = "not-a-uuid"

	result, err := fx.service.Deliver(context.Background(), job)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrInvalidPushJob)
}
