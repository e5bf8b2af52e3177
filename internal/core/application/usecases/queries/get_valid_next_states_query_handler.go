package queries

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetValidNextStatesQueryHandler answers "where can this order go next".
// Reads the order's state and track directly, then consults the in-memory
// lifecycle graph; no aggregate is materialized.
type GetValidNextStatesQueryHandler struct {
	db *gorm.DB
}

// NewGetValidNextStatesQueryHandler creates a handler for next-state queries.
// Requires a GORM database connection for query execution.
func NewGetValidNextStatesQueryHandler(db *gorm.DB) GetValidNextStatesQueryHandler {
	return GetValidNextStatesQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns ObjectNotFoundError when the order does not exist. A terminal state
// yields an empty options list, never an error.
func (h GetValidNextStatesQueryHandler) Handle(
	ctx context.Context,
	query GetValidNextStatesQuery,
) (GetValidNextStatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetValidNextStatesQueryResponse{}, err
	}

	var row struct {
		State string
		Track string
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			state,
			track
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&row)
	if result.Error != nil {
		return GetValidNextStatesQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetValidNextStatesQueryResponse{},
			errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	state := order.State(row.State)
	track := order.Track(row.Track)

	next, err := order.ValidNextStates(state, track)
	if err != nil {
		return GetValidNextStatesQueryResponse{}, err
	}

	terminal, err := order.IsTerminal(state, track)
	if err != nil {
		return GetValidNextStatesQueryResponse{}, err
	}

	options := make([]StateOption, 0, len(next))
	for _, s := range next {
		options = append(options, StateOption{State: s, Label: s.Label()})
	}

	return GetValidNextStatesQueryResponse{
		OrderID:      query.OrderID(),
		Track:        track,
		CurrentState: StateOption{State: state, Label: state.Label()},
		IsTerminal:   terminal,
		NextStates:   options,
	}, nil
}
