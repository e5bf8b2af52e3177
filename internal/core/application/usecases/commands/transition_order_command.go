package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order one step along its track's lifecycle
// graph. The target must be a valid successor of the order's current state;
// the graph itself decides what is reachable.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.StateQCPassed, "qc@atelier", "second fitting ok")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // target not reachable from the current state
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.State
	actor   string
	note    string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// The actor identifies who requested the change and is recorded on the audit
// trail; the note is optional free text.
func NewTransitionOrderCommand(orderID kernel.UUID, target order.State, actor, note string) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the state the order should move to.
func (c TransitionOrderCommand) Target() order.State {
	return c.target
}

// Actor returns who requested the transition.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

// Note returns the optional audit note.
func (c TransitionOrderCommand) Note() string {
	return c.note
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.State) error {
	if target == "" {
		return errs.NewValueIsRequiredError("target")
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
