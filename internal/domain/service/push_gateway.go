package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// PushMessage is the provider-neutral content of a push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// TokenFailure describes a token the provider did not accept.
type TokenFailure struct {
	Token   string
	Err     error
	Invalid bool // the token is permanently unusable and should be unregistered
}

// PushBatchResult is the outcome of one SendToTokens call.
type PushBatchResult struct {
	SuccessCount int
	FailureCount int
	Failures     []TokenFailure
}

// InvalidTokens returns the tokens reported as permanently unusable.
func (r *PushBatchResult) InvalidTokens() []string {
	if r == nil {
		return nil
	}

	var tokens []string
	for _, f := range r.Failures {
		if f.Invalid {
			tokens = append(tokens, f.Token)
		}
	}

	return tokens
}

// Merge adds other's counts and failures to r.
func (r *PushBatchResult) Merge(other *PushBatchResult) {
	if other == nil {
		return
	}
	r.SuccessCount += other.SuccessCount
	r.FailureCount += other.FailureCount
	r.Failures = append(r.Failures, other.Failures...)
}

// PushGateway sends push notifications to device tokens.
// A non-nil error means the whole batch could not be attempted; per-token
// failures are reported in the result.
type PushGateway interface {
	SendToTokens(ctx context.Context, tokens []string, message *PushMessage) (*PushBatchResult, error)
}

// FlattenData converts a structured payload into the string map push providers accept.
// Strings are kept, scalars are formatted and everything else is JSON encoded.
// Nil values are dropped.
func FlattenData(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			out[key] = v
		case fmt.Stringer:
			out[key] = v.String()
		case bool:
			out[key] = strconv.FormatBool(v)
		case int:
			out[key] = strconv.Itoa(v)
		case int64:
			out[key] = strconv.FormatInt(v, 10)
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				out[key] = fmt.Sprint(v)

				continue
			}
			out[key] = string(raw)
		}
	}

	return out
}
