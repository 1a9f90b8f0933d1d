package repository

import (
	"context"

	"khitma/internal/domain/entity"
)

// PushEventRepository appends to the push delivery and tracking log.
type PushEventRepository interface {
	// CreatePushEvent persists a single event.
	CreatePushEvent(ctx context.Context, event *entity.PushEvent) error

	// BatchCreatePushEvents persists events in batches.
	BatchCreatePushEvents(ctx context.Context, events []*entity.PushEvent) error
}
