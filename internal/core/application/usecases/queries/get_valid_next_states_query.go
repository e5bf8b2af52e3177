// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrGetValidNextStatesQueryIsNotConstructed = errors.New(
	"GetValidNextStatesQuery must be created via NewGetValidNextStatesQuery constructor",
)

// GetValidNextStatesQuery retrieves an order's current state and the states
// reachable from it in one transition. Drives the operations dashboard's
// "next action" buttons.
//
// Example:
//
//	query, err := NewGetValidNextStatesQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, option := range resp.NextStates {
//	    fmt.Printf("%s (%s)\n", option.State, option.Label)
//	}
type GetValidNextStatesQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetValidNextStatesQuery creates a query for the given order.
func NewGetValidNextStatesQuery(orderID kernel.UUID) (GetValidNextStatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetValidNextStatesQuery{}, err
	}

	return GetValidNextStatesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetValidNextStatesQueryIsNotConstructed if validation fails.
func (q GetValidNextStatesQuery) Validate() error {
	return q.guard.Validate(ErrGetValidNextStatesQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being inspected.
func (q GetValidNextStatesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StateOption pairs a state code with its human-readable label.
type StateOption struct {
	State order.State
	Label string
}

// GetValidNextStatesQueryResponse is the read model for an order's position
// on its track's lifecycle graph.
type GetValidNextStatesQueryResponse struct {
	OrderID      kernel.UUID
	Track        order.Track
	CurrentState StateOption
	IsTerminal   bool
	NextStates   []StateOption
}
