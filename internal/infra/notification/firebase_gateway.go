package notification

import (
	"context"
	"log/slog"

	"khitma/internal/domain/service"
	"khitma/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// fcmMaxTokens is the multicast limit of FCM.
const fcmMaxTokens = 500

// multicastSender is the part of *messaging.Client the gateway uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseGateway struct {
	client         multicastSender
	limiter        *rate.Limiter
	logger         *slog.Logger
	isInvalidToken func(err error) bool
}

// NewFirebaseGateway creates an FCM gateway authenticated with a service account file.
func NewFirebaseGateway(ctx context.Context, credentialsPath string, limiter *rate.Limiter, logger *slog.Logger) (service.PushGateway, error) {
	opts := []option.ClientOption{}
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseGateway(client, limiter, logger), nil
}

func newFirebaseGateway(client multicastSender, limiter *rate.Limiter, logger *slog.Logger) *firebaseGateway {
	return &firebaseGateway{
		client:         client,
		limiter:        limiter,
		logger:         logger,
		isInvalidToken: isUnusableFCMToken,
	}
}

// isUnusableFCMToken reports errors that will not go away on retry.
func isUnusableFCMToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// SendToTokens sends one multicast per 500 tokens. A failed chunk marks its tokens
// as failed; the error is returned only when no chunk could be sent.
func (g *firebaseGateway) SendToTokens(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushBatchResult, error) {
	result := &service.PushBatchResult{}
	if len(tokens) == 0 {
		return result, nil
	}

	var lastErr error
	sentChunks := 0
	for chunk := range chunkTokens(tokens, fcmMaxTokens) {
		if err := waitForTokens(ctx, g.limiter, len(chunk)); err != nil {
			return nil, err
		}

		response, err := g.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			g.logger.Warn("[FCM] Multicast failed", slog.Int("tokens", len(chunk)), slog.Any("error", err))
			result.Merge(failedChunk(chunk, err))
			lastErr = err

			continue
		}
		sentChunks++

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil || idx >= len(chunk) {
				continue
			}
			result.Failures = append(result.Failures, service.TokenFailure{
				Token:   chunk[idx],
				Err:     sendResponse.Error,
				Invalid: g.isInvalidToken(sendResponse.Error),
			})
		}
	}

	if sentChunks == 0 && lastErr != nil {
		return nil, errors.Wrap(lastErr, "failed to send multicast notification")
	}

	return result, nil
}
