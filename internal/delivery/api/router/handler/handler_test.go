package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "khitma/internal/delivery/api/middleware"
	"khitma/internal/delivery/api/validator"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	mockUsecase "khitma/internal/mocks/usecase"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// serve runs h for an authenticated caller; a nil userID means unauthenticated.
func serve(t *testing.T, h echo.HandlerFunc, method, target, body string, userID uuid.UUID, params ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := newTestEcho()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")
	if userID != uuid.Nil {
		deliverycontext.SetUserID(c, userID)
	}
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(append(c.ParamNames(), params[i])...)
		c.SetParamValues(append(c.ParamValues(), params[i+1])...)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("registers", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})

		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{
				DeviceToken: "fcm-1",
				Platform:    "android",
				Locale:      "ar",
				Timezone:    "Asia/Riyadh",
			}).
			Return(&entity.DeviceRegistration{ID: uuid.New(), UserID: userID, DeviceToken: "fcm-1"}, nil)

		rec, env := serve(t, h.RegisterDevice, http.MethodPost, "/api/v1/devices",
			`{"device_token":"fcm-1","platform":"android","locale":"ar","timezone":"Asia/Riyadh"}`, userID)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "req-1", env.Meta.RequestID)
		assert.Contains(t, string(env.Data), `"device_token":"fcm-1"`)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)})

		rec, env := serve(t, h.RegisterDevice, http.MethodPost, "/api/v1/devices",
			`{"device_token":"fcm-1","platform":"android","timezone":"Mars/Base"}`, userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("requires caller", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)})

		rec, _ := serve(t, h.RegisterDevice, http.MethodPost, "/api/v1/devices", `{}`, uuid.Nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})
}

func TestDeviceHandler_UnregisterDevice(t *testing.T) {
	userID := uuid.New()
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})

	deviceUC.EXPECT().
		UnregisterDevice(mock.Anything, userID, "ExponentPushToken[abc]").
		Return(domainerrors.ErrDeviceNotFound)

	rec, env := serve(t, h.UnregisterDevice, http.MethodDelete, "/api/v1/devices/x", "", userID,
		"token", "ExponentPushToken%5Babc%5D")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", env.Error.Code)
}

func TestActivityHandler_Ping(t *testing.T) {
	userID := uuid.New()

	t.Run("body timezone", func(t *testing.T) {
		activityUC := mockUsecase.NewMockActivityUsecase(t)
		h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})

		activityUC.EXPECT().
			Ping(mock.Anything, userID, "Europe/Istanbul").
			Return(&entity.DailyActivity{UserID: userID, Opened: true}, nil)

		rec, env := serve(t, h.Ping, http.MethodPost, "/api/v1/activity/ping", `{"timezone":"Europe/Istanbul"}`, userID)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"opened":true`)
	})

	t.Run("query timezone without body", func(t *testing.T) {
		activityUC := mockUsecase.NewMockActivityUsecase(t)
		h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})

		activityUC.EXPECT().
			Ping(mock.Anything, userID, "Asia/Jakarta").
			Return(&entity.DailyActivity{UserID: userID, Opened: true}, nil)

		rec, _ := serve(t, h.Ping, http.MethodPost, "/api/v1/activity/ping?timezone=Asia/Jakarta", "", userID)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no timezone leaves resolution to the usecase", func(t *testing.T) {
		activityUC := mockUsecase.NewMockActivityUsecase(t)
		h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})

		activityUC.EXPECT().
			MarkReading(mock.Anything, userID, "").
			Return(&entity.DailyActivity{UserID: userID, Reading: true}, nil)

		rec, env := serve(t, h.MarkReading, http.MethodPost, "/api/v1/activity/reading", "", userID)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"reading":true`)
	})
}

func TestActivityHandler_Streak(t *testing.T) {
	userID := uuid.New()
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})

	activityUC.EXPECT().
		Streak(mock.Anything, userID, "UTC").
		Return(&entity.Streak{Current: 4, TodayMet: true}, nil)

	rec, env := serve(t, h.Streak, http.MethodGet, "/api/v1/streak?timezone=UTC", "", userID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"streak":4,"today_met":true}`, string(env.Data))
}

func TestPreferenceHandler_UpdatePreference(t *testing.T) {
	userID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		preferenceUC := mockUsecase.NewMockPreferenceUsecase(t)
		h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: preferenceUC})

		preferenceUC.EXPECT().
			UpdatePreference(mock.Anything, userID, mock.MatchedBy(func(u *usecase.PreferenceUpdate) bool {
				return u.AllowMotivationalNotifications != nil && !*u.AllowMotivationalNotifications &&
					u.AllowGroupNotifications == nil &&
					u.PreferredPersonalReminderHour != nil && *u.PreferredPersonalReminderHour == "7"
			})).
			Return(&entity.NotificationPreference{UserID: userID}, nil)

		rec, _ := serve(t, h.UpdatePreference, http.MethodPut, "/api/v1/preferences",
			`{"allow_motivational_notifications":false,"preferred_personal_reminder_hour":"7"}`, userID)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of range hour from usecase", func(t *testing.T) {
		preferenceUC := mockUsecase.NewMockPreferenceUsecase(t)
		h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: preferenceUC})

		preferenceUC.EXPECT().
			UpdatePreference(mock.Anything, userID, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("preferred_personal_reminder_hour must be 0-23"))

		rec, env := serve(t, h.UpdatePreference, http.MethodPut, "/api/v1/preferences",
			`{"preferred_personal_reminder_hour":"24"}`, userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "preferred_personal_reminder_hour must be 0-23", env.Error.Details)
	})

	t.Run("non numeric hour", func(t *testing.T) {
		h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: mockUsecase.NewMockPreferenceUsecase(t)})

		rec, _ := serve(t, h.UpdatePreference, http.MethodPut, "/api/v1/preferences",
			`{"preferred_personal_reminder_hour":"seven"}`, userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMotivationHandler_Today(t *testing.T) {
	userID := uuid.New()
	localDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returns verse for local date", func(t *testing.T) {
		activityUC := mockUsecase.NewMockActivityUsecase(t)
		verseUC := mockUsecase.NewMockVerseUsecase(t)
		h := NewMotivationHandler(MotivationHandlerParams{ActivityUC: activityUC, VerseUC: verseUC})

		activityUC.EXPECT().
			LocalToday(mock.Anything, userID, "Asia/Karachi").
			Return(localDate.Add(8*time.Hour), localDate, nil)
		verseUC.EXPECT().
			TodayVerse(mock.Anything, userID, localDate).
			Return(&entity.Verse{SurahNumber: 94, AyahNumber: 5}, nil)

		rec, env := serve(t, h.Today, http.MethodGet, "/api/v1/motivation/today?timezone=Asia/Karachi", "", userID)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"date":"2024-03-10"`)
		assert.Contains(t, string(env.Data), `"ayah_number":5`)
	})

	t.Run("empty catalog", func(t *testing.T) {
		activityUC := mockUsecase.NewMockActivityUsecase(t)
		verseUC := mockUsecase.NewMockVerseUsecase(t)
		h := NewMotivationHandler(MotivationHandlerParams{ActivityUC: activityUC, VerseUC: verseUC})

		activityUC.EXPECT().LocalToday(mock.Anything, userID, "").Return(localDate, localDate, nil)
		verseUC.EXPECT().TodayVerse(mock.Anything, userID, localDate).Return(nil, usecase.ErrNoActiveVerses)

		rec, env := serve(t, h.Today, http.MethodGet, "/api/v1/motivation/today", "", userID)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NO_ACTIVE_VERSES", env.Error.Code)
	})
}

func TestNotificationHandler(t *testing.T) {
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("list with limit", func(t *testing.T) {
		inboxUC := mockUsecase.NewMockInboxUsecase(t)
		h := NewNotificationHandler(NotificationHandlerParams{InboxUC: inboxUC})

		inboxUC.EXPECT().ListNotifications(mock.Anything, userID, 20).Return([]*entity.AppNotification{}, nil)

		rec, _ := serve(t, h.ListNotifications, http.MethodGet, "/api/v1/notifications?limit=20", "", userID)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limit above maximum", func(t *testing.T) {
		h := NewNotificationHandler(NotificationHandlerParams{InboxUC: mockUsecase.NewMockInboxUsecase(t)})

		rec, _ := serve(t, h.ListNotifications, http.MethodGet, "/api/v1/notifications?limit=101", "", userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("mark read defaults to true", func(t *testing.T) {
		inboxUC := mockUsecase.NewMockInboxUsecase(t)
		h := NewNotificationHandler(NotificationHandlerParams{InboxUC: inboxUC})

		inboxUC.EXPECT().MarkRead(mock.Anything, userID, notificationID, true).Return(&entity.AppNotification{ID: notificationID}, nil)

		rec, _ := serve(t, h.MarkRead, http.MethodPatch, "/api/v1/notifications/x/read", "", userID, "id", notificationID.String())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mark unread", func(t *testing.T) {
		inboxUC := mockUsecase.NewMockInboxUsecase(t)
		h := NewNotificationHandler(NotificationHandlerParams{InboxUC: inboxUC})

		inboxUC.EXPECT().MarkRead(mock.Anything, userID, notificationID, false).Return(&entity.AppNotification{ID: notificationID}, nil)

		rec, _ := serve(t, h.MarkRead, http.MethodPatch, "/api/v1/notifications/x/read", `{"read":false}`, userID, "id", notificationID.String())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		inboxUC := mockUsecase.NewMockInboxUsecase(t)
		h := NewNotificationHandler(NotificationHandlerParams{InboxUC: inboxUC})

		inboxUC.EXPECT().DeleteNotification(mock.Anything, userID, notificationID).Return(domainerrors.ErrNotificationNotFound)

		rec, _ := serve(t, h.DeleteNotification, http.MethodDelete, "/api/v1/notifications/x", "", userID, "id", notificationID.String())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewNotificationHandler(NotificationHandlerParams{InboxUC: mockUsecase.NewMockInboxUsecase(t)})

		rec, _ := serve(t, h.DeleteNotification, http.MethodDelete, "/api/v1/notifications/x", "", userID, "id", "nope")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_Opened(t *testing.T) {
	userID := uuid.New()
	trackingUC := mockUsecase.NewMockPushTrackingUsecase(t)
	h := NewPushHandler(PushHandlerParams{TrackingUC: trackingUC})

	trackingUC.EXPECT().
		RecordOpened(mock.Anything, mock.MatchedBy(func(e *usecase.PushTrackingEvent) bool {
			return e.UserID == userID && e.NotificationType == "motivational_verse" && e.Data["notification_id"] == "n-1"
		})).
		Return(&entity.PushEvent{Event: entity.PushEventOpened}, nil)

	rec, _ := serve(t, h.Opened, http.MethodPost, "/api/v1/push/opened",
		`{"device_token":"fcm-1","notification_type":"motivational_verse","data":{"notification_id":"n-1"}}`, userID)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	t.Run("without database check", func(t *testing.T) {
		h := NewHealthHandler(HealthHandlerParams{})

		rec, env := serve(t, h.Health, http.MethodGet, "/health", "", uuid.Nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	})

	t.Run("database down", func(t *testing.T) {
		h := NewHealthHandler(HealthHandlerParams{Check: func(ctx context.Context) error { return assert.AnError }})

		rec, _ := serve(t, h.Health, http.MethodGet, "/health", "", uuid.Nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
