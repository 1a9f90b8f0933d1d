package impl

import (
	"context"
	"testing"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
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

type notificationDispatcherFixtures struct {
	dispatcher       *notificationDispatcher
	notificationRepo *mockRepo.MockNotificationRepository
	preferenceRepo   *mockRepo.MockPreferenceRepository
	pushQueue        *mockSvc.MockPushQueue
	now              time.Time
}

func createTestNotificationDispatcher(t *testing.T) notificationDispatcherFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	pushQueue := mockSvc.NewMockPushQueue(t)
	now := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)

	dispatcher := NewNotificationDispatcher(NotificationDispatcherParams{
		NotificationRepo: notificationRepo,
		PreferenceRepo:   preferenceRepo,
		PushQueue:        pushQueue,
		Logger:           newDiscardLogger(),
	}).(*notificationDispatcher)
	dispatcher.now = func() time.Time { return now }
	dispatcher.jitter = func(n int64) int64 { return n - 1 }

	return notificationDispatcherFixtures{
		dispatcher:       dispatcher,
		notificationRepo: notificationRepo,
		preferenceRepo:   preferenceRepo,
		pushQueue:        pushQueue,
		now:              now,
	}
}

func testVerseContent() *entity.NotificationContent {
	return NewNotificationComposer().ComposeVerse(testVerse(), entity.LanguageEnglish)
}

func TestNotificationDispatcher_Dispatch_Success(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()
	content := testVerseContent()
	tokens := []string{"token-a", "token-b"}

	var stored *entity.AppNotification
	fx.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.AppNotification")).
		Run(func(_ context.Context, notification *entity.AppNotification) {
			stored = notification
		}).
		Return(nil)

	var queued *service.PushJob
	fx.pushQueue.EXPECT().
		Enqueue(ctx, mock.AnythingOfType("*service.PushJob")).
		Run(func(_ context.Context, job *service.PushJob) {
			queued = job
		}).
		Return(nil)

	result, err := fx.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
		UserID:   userID,
		Content:  content,
		Tokens:   tokens,
		MaxDelay: 30 * time.Second,
	})

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.True(t, result.PushQueued)
	assert.NoError(t, result.PushError)
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, entity.NotificationTypeMotivational, stored.Type)
	assert.Equal(t, content.Title, stored.Title)

	require.NotNil(t, queued)
	assert.Equal(t, tokens, queued.Tokens)
	assert.Equal(t, stored.ID.String(), queued.NotificationID)
	assert.Equal(t, stored.ID.String(), queued.Data["notification_id"])
	assert.Equal(t, "motivational_verse", queued.Data["type"])
	assert.Equal(t, fx.now.Add(30*time.Second), queued.DeliverAfter)
	assert.NotContains(t, content.PushData, "notification_id")
}

func TestNotificationDispatcher_Dispatch_SkippedByPreference(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := entity.DefaultNotificationPreference(userID)
	pref.AllowMotivationalNotifications = false

	fx.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(pref, nil)

	result, err := fx.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
		UserID:  userID,
		Content: testVerseContent(),
		Tokens:  []string{"token"},
	})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Nil(t, result.Notification)
}

func TestNotificationDispatcher_Dispatch_QueueFailureKeepsRecord(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()
	queueErr := errors.New("queue unavailable")

	fx.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(entity.DefaultNotificationPreference(userID), nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.AppNotification")).Return(nil)
	fx.pushQueue.EXPECT().Enqueue(ctx, mock.AnythingOfType("*service.PushJob")).Return(queueErr)

	result, err := fx.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
		UserID:  userID,
		Content: testVerseContent(),
		Tokens:  []string{"token"},
	})

	require.NoError(t, err)
	assert.NotNil(t, result.Notification)
	assert.False(t, result.PushQueued)
	assert.ErrorIs(t, result.PushError, queueErr)
}

func TestNotificationDispatcher_Dispatch_NoTokens(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.AppNotification")).Return(nil)

	result, err := fx.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{UserID: userID, Content: testVerseContent()})

	require.NoError(t, err)
	assert.NotNil(t, result.Notification)
	assert.False(t, result.PushQueued)
}

func TestNotificationDispatcher_Dispatch_CreateError(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.AppNotification")).
		Return(errors.New("database error"))

	result, err := fx.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
		UserID:  userID,
		Content: testVerseContent(),
		Tokens:  []string{"token"},
	})

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to create notification")
}

func TestNotificationDispatcher_Dispatch_OncePerLocalDate(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	req := &usecase.DispatchRequest{
		UserID:    userID,
		Content:   testVerseContent(),
		Tokens:    []string{"token"},
		LocalDate: date,
	}

	fx.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(nil, repository.ErrPreferenceNotFound).Times(2)
	fx.notificationRepo.EXPECT().
		CreateDailyNotification(ctx, mock.MatchedBy(func(n *entity.AppNotification) bool {
			return n.DispatchDate != nil && n.DispatchDate.Equal(date) && n.Type == entity.NotificationTypeMotivational
		})).
		Return(true, nil).Once()
	fx.notificationRepo.EXPECT().
		CreateDailyNotification(ctx, mock.AnythingOfType("*entity.AppNotification")).
		Return(false, nil).Once()
	fx.pushQueue.EXPECT().Enqueue(ctx, mock.AnythingOfType("*service.PushJob")).Return(nil).Once()

	first, err := fx.dispatcher.Dispatch(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.PushQueued)
	assert.False(t, first.Duplicate)

	second, err := fx.dispatcher.Dispatch(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Nil(t, second.Notification)
	assert.False(t, second.PushQueued)
}

func TestNotificationDispatcher_PushDelay(t *testing.T) {
	fx := createTestNotificationDispatcher(t)

	assert.Equal(t, time.Second, fx.dispatcher.pushDelay(0))
	assert.Equal(t, time.Second, fx.dispatcher.pushDelay(500*time.Millisecond))
	assert.Equal(t, 10*time.Second, fx.dispatcher.pushDelay(10*time.Second))

	fx.dispatcher.jitter = func(int64) int64 { return 0 }
	assert.Equal(t, time.Second, fx.dispatcher.pushDelay(10*time.Second))
}
