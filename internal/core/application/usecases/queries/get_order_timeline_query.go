package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// GetOrderTimelineQuery retrieves an order's full audit trail, oldest first.
type GetOrderTimelineQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTimelineQuery creates a timeline query for the given order.
func NewGetOrderTimelineQuery(orderID kernel.UUID) (GetOrderTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, err
	}

	return GetOrderTimelineQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTimelineQueryIsNotConstructed if validation fails.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetOrderTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TimelineEntry is one audit record in the read model. FromState is nil for
// the creation record.
type TimelineEntry struct {
	FromState  *order.State
	ToState    order.State
	ToLabel    string
	Actor      string
	Note       string
	OccurredAt time.Time
}
