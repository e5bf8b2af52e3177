// Package timeline holds the append-only audit trail of order state changes.
// Records are written once, inside the same transaction as the transition
// they describe, and never updated.
package timeline

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ActorSystem marks records produced by automated processes rather than a
// human operator.
const ActorSystem = "system"

// ErrTransitionRecordIsNotConstructed is returned when a TransitionRecord was
// not created through its factory functions.
var ErrTransitionRecordIsNotConstructed = errors.New(
	"TransitionRecord must be created via NewTransitionRecord constructor")

// TransitionRecord is one entry in an order's state history. FromState is nil
// for the record written when the order is created.
type TransitionRecord struct {
	id         kernel.UUID
	orderID    kernel.UUID
	fromState  *order.State
	toState    order.State
	actor      string
	note       string
	occurredAt time.Time
	guard      guard.ConstructorGuard
}

// NewTransitionRecord creates a record for a transition that just happened.
func NewTransitionRecord(
	orderID kernel.UUID,
	fromState *order.State,
	toState order.State,
	actor, note string,
	occurredAt time.Time,
) (*TransitionRecord, error) {
	return RestoreTransitionRecord(kernel.NewUUID(), orderID, fromState, toState, actor, note, occurredAt)
}

// RestoreTransitionRecord reconstructs a TransitionRecord from persistent
// storage.
func RestoreTransitionRecord(
	id, orderID kernel.UUID,
	fromState *order.State,
	toState order.State,
	actor, note string,
	occurredAt time.Time,
) (*TransitionRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if toState == "" {
		return nil, errs.NewValueIsRequiredError("toState")
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}

	var from *order.State
	if fromState != nil {
		f := *fromState
		from = &f
	}

	return &TransitionRecord{
		id:         id,
		orderID:    orderID,
		fromState:  from,
		toState:    toState,
		actor:      actor,
		note:       note,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TransitionRecord instance was properly constructed.
func (r *TransitionRecord) Validate() error {
	if r == nil {
		return ErrTransitionRecordIsNotConstructed
	}
	return r.guard.Validate(ErrTransitionRecordIsNotConstructed)
}

func (r *TransitionRecord) ID() kernel.UUID      { return r.id }
func (r *TransitionRecord) OrderID() kernel.UUID { return r.orderID }
func (r *TransitionRecord) ToState() order.State { return r.toState }
func (r *TransitionRecord) Actor() string        { return r.actor }
func (r *TransitionRecord) Note() string         { return r.note }
func (r *TransitionRecord) OccurredAt() time.Time {
	return r.occurredAt
}

// FromState returns a copy of the source state, or nil for the creation
// record.
func (r *TransitionRecord) FromState() *order.State {
	if r.fromState == nil {
		return nil
	}
	f := *r.fromState
	return &f
}
