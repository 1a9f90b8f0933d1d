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

	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
	"khitma/internal/infra/pubsub"
	mockUsecase "khitma/internal/mocks/usecase"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, verify bool, validate tokenValidator) (*PushHandler, *mockUsecase.MockPushDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockPushDeliveryUsecase(t)

	return &PushHandler{
		verifyPushAuth: verify,
		validate:       validate,
		deliveryUC:     deliveryUC,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, deliveryUC
}

func envelopeBody(t *testing.T, job *service.PushJob) string {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(job, "projects/p/subscriptions/push", time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func post(h *PushHandler, body, auth string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	job := &service.PushJob{
		RequestID:        "req-42",
		JobID:            "job-1",
		NotificationID:   "0190c6c2-0000-7000-8000-000000000001",
		UserID:           "0190c6c2-0000-7000-8000-000000000002",
		NotificationType: "motivational_verse",
		Tokens:           []string{"fcm-1"},
		Title:            "t",
		Body:             "b",
	}

	t.Run("delivered acks", func(t *testing.T) {
		h, deliveryUC := newTestHandler(t, false, nil)
		deliveryUC.EXPECT().
			Deliver(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
			}), mock.MatchedBy(func(j *service.PushJob) bool {
				return j.JobID == "job-1" && j.Tokens[0] == "fcm-1"
			})).
			Return(&service.PushBatchResult{SuccessCount: 1}, nil)

		rec := post(h, envelopeBody(t, job), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, deliveryUC := newTestHandler(t, false, nil)
		deliveryUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		rec := post(h, envelopeBody(t, job), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid job is acked", func(t *testing.T) {
		h, deliveryUC := newTestHandler(t, false, nil)
		deliveryUC.EXPECT().Deliver(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(usecase.ErrInvalidPushJob, "user_id"))

		rec := post(h, envelopeBody(t, job), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestHandler(t, false, nil)

		rec := post(h, `{"message":{"data":"!!not-base64!!"}}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token when verification is on", func(t *testing.T) {
		h, _ := newTestHandler(t, true, nil)

		rec := post(h, envelopeBody(t, job), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verified google token", func(t *testing.T) {
		var gotAudience string
		h, deliveryUC := newTestHandler(t, true, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			assert.Equal(t, "oidc", token)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		})
		deliveryUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(&service.PushBatchResult{}, nil)

		rec := post(h, envelopeBody(t, job), "Bearer oidc")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, true, func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		})

		rec := post(h, envelopeBody(t, job), "Bearer oidc")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
