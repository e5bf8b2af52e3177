// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActiveOnTrack retrieves every order on the given track that has
	// not yet reached its terminal state. Used by the risk refresh job.
	GetAllActiveOnTrack(ctx context.Context, track order.Track) ([]*order.Order, error)
}
