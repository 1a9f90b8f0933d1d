package notification

import (
	"context"
	"log/slog"

	"khitma/internal/domain/service"
	"khitma/internal/errors"

	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
	"golang.org/x/time/rate"
)

// expoMaxMessages is the number of messages Expo accepts per request.
const expoMaxMessages = 100

// expoPublisher is the part of *expo.PushClient the gateway uses.
type expoPublisher interface {
	PublishMultiple(messages []expo.PushMessage) ([]expo.PushResponse, error)
}

type expoGateway struct {
	client  expoPublisher
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewExpoGateway creates a gateway for ExponentPushToken[...] tokens.
func NewExpoGateway(host, accessToken string, limiter *rate.Limiter, logger *slog.Logger) service.PushGateway {
	client := expo.NewPushClient(&expo.ClientConfig{
		Host:        host,
		AccessToken: accessToken,
	})

	return newExpoGateway(client, limiter, logger)
}

func newExpoGateway(client expoPublisher, limiter *rate.Limiter, logger *slog.Logger) *expoGateway {
	return &expoGateway{client: client, limiter: limiter, logger: logger}
}

// IsExpoToken reports whether token is an Expo push token.
func IsExpoToken(token string) bool {
	_, err := expo.NewExponentPushToken(token)

	return err == nil
}

// SendToTokens sends one message per token, 100 messages per request.
func (g *expoGateway) SendToTokens(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushBatchResult, error) {
	result := &service.PushBatchResult{}
	if len(tokens) == 0 {
		return result, nil
	}

	var lastErr error
	sentChunks := 0
	for chunk := range chunkTokens(tokens, expoMaxMessages) {
		if err := waitForTokens(ctx, g.limiter, len(chunk)); err != nil {
			return nil, err
		}

		messages := make([]expo.PushMessage, 0, len(chunk))
		for _, token := range chunk {
			messages = append(messages, expo.PushMessage{
				To:       []expo.ExponentPushToken{expo.ExponentPushToken(token)},
				Title:    msg.Title,
				Body:     msg.Body,
				Data:     msg.Data,
				Sound:    "default",
				Priority: expo.DefaultPriority,
			})
		}

		responses, err := g.client.PublishMultiple(messages)
		if err != nil {
			g.logger.Warn("[Expo] Publish failed", slog.Int("tokens", len(chunk)), slog.Any("error", err))
			result.Merge(failedChunk(chunk, err))
			lastErr = err

			continue
		}
		sentChunks++

		result.Merge(expoChunkResult(chunk, responses))
	}

	if sentChunks == 0 && lastErr != nil {
		return nil, errors.Wrap(lastErr, "failed to publish expo notifications")
	}

	return result, nil
}

// expoChunkResult pairs responses with tokens by position; missing responses count as failures.
func expoChunkResult(chunk []string, responses []expo.PushResponse) *service.PushBatchResult {
	result := &service.PushBatchResult{}
	for idx, token := range chunk {
		if idx >= len(responses) {
			result.FailureCount++
			result.Failures = append(result.Failures, service.TokenFailure{
				Token: token,
				Err:   errors.New("missing push ticket"),
			})

			continue
		}

		response := responses[idx]
		err := response.ValidateResponse()
		if err == nil {
			result.SuccessCount++

			continue
		}

		var notRegistered *expo.DeviceNotRegisteredError
		result.FailureCount++
		result.Failures = append(result.Failures, service.TokenFailure{
			Token:   token,
			Err:     err,
			Invalid: errors.As(err, &notRegistered),
		})
	}

	return result
}
