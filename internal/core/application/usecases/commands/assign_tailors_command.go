package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAssignTailorsCommandIsNotConstructed = errors.New(
	"AssignTailorsCommand must be created via NewAssignTailorsCommand constructor",
)

// AssignTailorsCommand triggers dual tailor assignment for one order item: one
// primary and one backup tailor are selected from the available pool and
// pinned to the garment.
//
// Example:
//
//	cmd, err := NewAssignTailorsCommand(orderItemID, "ZONE_A")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrTailorsAlreadyAssigned):
//	    // the existing pair is on the error
//	case errors.Is(err, services.ErrNotEnoughTailors):
//	    // pool too small, retry later
//	}
type AssignTailorsCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.UUID
	zone        string

	guard guard.ConstructorGuard
}

// NewAssignTailorsCommand creates a command to assign a tailor pair to an
// order item. Zone optionally restricts the candidate pool to one workshop
// zone; empty means any zone.
func NewAssignTailorsCommand(orderItemID kernel.UUID, zone string) (AssignTailorsCommand, error) {
	cmd := AssignTailorsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderItemID(orderItemID); err != nil {
		return AssignTailorsCommand{}, err
	}

	cmd.zone = zone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignTailorsCommandIsNotConstructed if validation fails.
func (c AssignTailorsCommand) Validate() error {
	return c.guard.Validate(ErrAssignTailorsCommandIsNotConstructed)
}

// OrderItemID returns the identifier of the item to assign tailors for.
func (c AssignTailorsCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

// Zone returns the optional workshop zone restriction.
func (c AssignTailorsCommand) Zone() string {
	return c.zone
}

func (c *AssignTailorsCommand) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}

	c.orderItemID = orderItemID
	return nil
}
