// Package notification implements the push gateways: FCM, Expo and a router between them.
package notification

import (
	"context"
	"iter"
	"slices"

	"khitma/internal/domain/service"
	"khitma/internal/errors"

	"golang.org/x/time/rate"
)

// NewLimiter builds the shared provider rate limiter. A non-positive limit disables limiting.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(perSecond), max(1, burst))
}

// waitForTokens blocks until the limiter admits n messages, in burst-sized steps.
func waitForTokens(ctx context.Context, limiter *rate.Limiter, n int) error {
	if limiter == nil || limiter.Limit() == rate.Inf {
		return nil
	}

	for n > 0 {
		step := min(n, limiter.Burst())
		if err := limiter.WaitN(ctx, step); err != nil {
			return errors.Wrap(err, "push rate limiter")
		}
		n -= step
	}

	return nil
}

func chunkTokens(tokens []string, size int) iter.Seq[[]string] {
	return slices.Chunk(tokens, size)
}

func failedChunk(tokens []string, err error) *service.PushBatchResult {
	result := &service.PushBatchResult{FailureCount: len(tokens)}
	for _, token := range tokens {
		result.Failures = append(result.Failures, service.TokenFailure{Token: token, Err: err})
	}

	return result
}
