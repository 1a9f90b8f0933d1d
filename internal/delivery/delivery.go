package delivery

import "context"

// Delivery is a long-running entry point (HTTP API, push worker, cron).
// Serve blocks until the delivery stops; shutdown goes through fx OnStop hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
