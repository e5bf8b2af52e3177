package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/timeline"
)

// TimelineRepository defines the persistence contract for the append-only
// state history. Records are only ever added, never updated or deleted.
type TimelineRepository interface {
	// Add persists a new transition record.
	Add(ctx context.Context, record *timeline.TransitionRecord) error

	// GetByOrder retrieves an order's full history, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*timeline.TransitionRecord, error)
}
