package notification

import (
	"context"

	"khitma/internal/domain/service"
	"khitma/internal/errors"

	"golang.org/x/sync/errgroup"
)

// ErrProviderDisabled marks tokens whose provider is not configured.
var ErrProviderDisabled = errors.New("push provider disabled")

type routingGateway struct {
	fcm  service.PushGateway
	expo service.PushGateway
}

// NewRoutingGateway sends Expo tokens to expoGateway and all other tokens to fcmGateway.
// Either gateway may be nil; its tokens then fail without being marked invalid.
func NewRoutingGateway(fcmGateway, expoGateway service.PushGateway) service.PushGateway {
	return &routingGateway{fcm: fcmGateway, expo: expoGateway}
}

func (r *routingGateway) SendToTokens(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushBatchResult, error) {
	var expoTokens, fcmTokens []string
	for _, token := range tokens {
		if IsExpoToken(token) {
			expoTokens = append(expoTokens, token)
		} else {
			fcmTokens = append(fcmTokens, token)
		}
	}

	var fcmResult, expoResult *service.PushBatchResult
	var fcmErr, expoErr error

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fcmResult, fcmErr = send(groupCtx, r.fcm, fcmTokens, msg)
		return nil
	})
	group.Go(func() error {
		expoResult, expoErr = send(groupCtx, r.expo, expoTokens, msg)
		return nil
	})
	_ = group.Wait()

	if fcmErr != nil && expoErr != nil {
		return nil, errors.Join(fcmErr, expoErr)
	}

	result := &service.PushBatchResult{}
	for _, part := range []struct {
		tokens []string
		result *service.PushBatchResult
		err    error
	}{
		{tokens: fcmTokens, result: fcmResult, err: fcmErr},
		{tokens: expoTokens, result: expoResult, err: expoErr},
	} {
		if part.err != nil {
			result.Merge(failedChunk(part.tokens, part.err))

			continue
		}
		result.Merge(part.result)
	}

	return result, nil
}

func send(ctx context.Context, gateway service.PushGateway, tokens []string, msg *service.PushMessage) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}
	if gateway == nil {
		return failedChunk(tokens, ErrProviderDisabled), nil
	}

	return gateway.SendToTokens(ctx, tokens, msg)
}
