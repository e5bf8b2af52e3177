package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// ItemRepository defines the persistence contract for order item aggregates.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	Add(ctx context.Context, aggregate *order.Item) error

	// Update persists changes to an existing item aggregate. The tailor pair
	// is excluded; it only flows through UpdateAssignment.
	Update(ctx context.Context, aggregate *order.Item) error

	// UpdateAssignment persists the item's tailor pair through a conditional
	// write that only succeeds while the stored pair is still empty. Losing
	// the condition against a concurrent assignment surfaces
	// order.TailorsAlreadyAssignedError carrying the stored pair.
	UpdateAssignment(ctx context.Context, aggregate *order.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Item, error)

	// GetByOrder retrieves all items belonging to the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)

	// GetAllUnassigned retrieves items that have no tailor pair yet.
	// Used by the assignment sweep job to find work awaiting dispatch.
	GetAllUnassigned(ctx context.Context) ([]*order.Item, error)
}
