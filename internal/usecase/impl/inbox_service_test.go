package impl

import (
	"context"
	"testing"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	mockRepo "khitma/internal/mocks/repository"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inboxServiceFixtures struct {
	service          usecase.InboxUsecase
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestInboxService(t *testing.T) inboxServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	return inboxServiceFixtures{
		service:          NewInboxService(notificationRepo),
		notificationRepo: notificationRepo,
	}
}

func TestInboxService_ListNotifications_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	for _, tc := range []struct {
		requested, expected int
	}{
		{requested: 0, expected: MaxInboxPageSize},
		{requested: 500, expected: MaxInboxPageSize},
		{requested: 20, expected: 20},
	} {
		fx := createTestInboxService(t)
		fx.notificationRepo.EXPECT().FindNotificationsByUser(ctx, userID, tc.expected).Return([]*entity.AppNotification{}, nil)

		got, err := fx.service.ListNotifications(ctx, userID, tc.requested)

		require.NoError(t, err)
		assert.NotNil(t, got)
	}
}

func TestInboxService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	t.Run("read sets a timestamp", func(t *testing.T) {
		fx := createTestInboxService(t)
		fx.notificationRepo.EXPECT().
			SetReadAt(ctx, userID, notificationID, mock.AnythingOfType("*time.Time")).
			Return(&entity.AppNotification{ID: notificationID}, nil)

		got, err := fx.service.MarkRead(ctx, userID, notificationID, true)

		require.NoError(t, err)
		assert.Equal(t, notificationID, got.ID)
	})

	t.Run("unread clears the timestamp", func(t *testing.T) {
		fx := createTestInboxService(t)
		fx.notificationRepo.EXPECT().
			SetReadAt(ctx, userID, notificationID, mock.MatchedBy(func(readAt *time.Time) bool { return readAt == nil })).
			Return(&entity.AppNotification{ID: notificationID}, nil)

		got, err := fx.service.MarkRead(ctx, userID, notificationID, false)

		require.NoError(t, err)
		assert.Nil(t, got.ReadAt)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestInboxService(t)
		fx.notificationRepo.EXPECT().
			SetReadAt(ctx, userID, notificationID, mock.Anything).
			Return(nil, repository.ErrNotificationNotFound)

		_, err := fx.service.MarkRead(ctx, userID, notificationID, false)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}

func TestInboxService_DeleteNotification(t *testing.T) {
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	fx := createTestInboxService(t)
	fx.notificationRepo.EXPECT().DeleteNotification(ctx, userID, notificationID).Return(repository.ErrNotificationNotFound)

	assert.ErrorIs(t, fx.service.DeleteNotification(ctx, userID, notificationID), domainerrors.ErrNotificationNotFound)
}
