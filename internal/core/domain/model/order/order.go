package order

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// riskHorizon is the window before the delivery deadline over which the
// derived risk score ramps from 0 to 1.
const riskHorizon = 72 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeadlineIsRequired is returned when a track B order is created without
	// a delivery deadline. Track B carries a hard delivery cutoff by definition.
	ErrDeadlineIsRequired = errs.NewValueIsRequiredError("deadline")

	// ErrInvalidTransition is the sentinel for rejected state transitions.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrTerminalStateViolation is the sentinel for transitions attempted on an
	// order already in its track's terminal state.
	ErrTerminalStateViolation = errors.New("order is in terminal state")
)

// InvalidTransitionError reports a requested transition that is not an edge of
// the order's track graph. The valid options are included so the caller can
// surface them; the requested target is never silently clamped or corrected.
type InvalidTransitionError struct {
	From         State
	To           State
	Track        Track
	ValidOptions []State
}

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(from, to State, track Track, validOptions []State) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Track: track, ValidOptions: validOptions}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %s to %s on track %s",
		ErrInvalidTransition, e.From.Label(), e.To.Label(), e.Track)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateViolationError reports a transition attempted on a completed order.
type TerminalStateViolationError struct {
	State State
	Track Track
}

// NewTerminalStateViolationError creates a TerminalStateViolationError.
func NewTerminalStateViolationError(state State, track Track) *TerminalStateViolationError {
	return &TerminalStateViolationError{State: state, Track: track}
}

func (e *TerminalStateViolationError) Error() string {
	return fmt.Sprintf("%s: %s (track %s)", ErrTerminalStateViolation, e.State.Label(), e.Track)
}

func (e *TerminalStateViolationError) Unwrap() error {
	return ErrTerminalStateViolation
}

// Order is the aggregate root for one customer purchase. It is created on
// payment in StatePaid, mutated only through TransitionTo, and never deleted:
// completion means reaching the track's terminal state.
//
// Invariants:
//   - Must have a valid unique identifier and a valid track
//   - State changes follow the track's transition graph; no transitions out
//     of the terminal state
//   - Track B orders always have a delivery deadline
//   - Risk score is derived and only meaningful on track B
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// track selects which fulfillment pipeline the order follows
	track Track

	// state is the current lifecycle state code
	state State

	// total is the monetary total across all items
	total kernel.Money

	// deadline is the hard delivery cutoff (required on track B, nil on track A)
	deadline *time.Time

	// riskScore is the derived deadline risk in [0,1] (track B only)
	riskScore float64

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// NewOrder creates an Order in the initial StatePaid state.
//
// Track B requires a non-nil deadline; track A ignores it. The total is the
// order's monetary value across items and may be zero at creation.
func NewOrder(id kernel.UUID, track Track, total kernel.Money, deadline *time.Time) (*Order, error) {
	o := &Order{
		state: StatePaid,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrack(track),
		o.setDeadline(track, deadline),
	); err != nil {
		return nil, err
	}

	o.total = total
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// current state and derived risk score. The state must exist on the track's
// graph; data corrupted below that bar does not reach the domain.
func RestoreOrder(
	id kernel.UUID,
	track Track,
	state State,
	total kernel.Money,
	deadline *time.Time,
	riskScore float64,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrack(track),
		o.setDeadline(track, deadline),
	); err != nil {
		return nil, err
	}

	if _, err := IsTerminal(state, track); err != nil {
		return nil, err
	}

	o.state = state
	o.total = total
	o.riskScore = riskScore
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Track returns the order's fulfillment track.
func (o *Order) Track() Track {
	return o.track
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Deadline returns the hard delivery cutoff, or nil on track A.
func (o *Order) Deadline() *time.Time {
	return o.deadline
}

// RiskScore returns the derived deadline risk in [0,1]. Always 0 on track A.
func (o *Order) RiskScore() float64 {
	return o.riskScore
}

// IsTerminal reports whether the order has reached its track's terminal state.
func (o *Order) IsTerminal() bool {
	terminal, err := IsTerminal(o.state, o.track)
	return err == nil && terminal
}

// TransitionTo moves the order to the requested state.
//
// The transition is validated against the track's graph:
//   - an order in its terminal state rejects every request with
//     TerminalStateViolationError
//   - a target code absent from the track's graph fails with UnknownStateError
//   - a known target that is not a valid next state fails with
//     InvalidTransitionError carrying the valid options
//
// The order's state is only mutated on success.
func (o *Order) TransitionTo(target State) error {
	terminal, err := IsTerminal(o.state, o.track)
	if err != nil {
		return err
	}
	if terminal {
		return NewTerminalStateViolationError(o.state, o.track)
	}

	validNext, err := ValidNextStates(o.state, o.track)
	if err != nil {
		return err
	}

	if _, known := trackTransitions[o.track][target]; !known {
		return NewUnknownStateError(target, o.track)
	}

	for _, s := range validNext {
		if s == target {
			o.state = target
			return nil
		}
	}

	return NewInvalidTransitionError(o.state, target, o.track, validNext)
}

// RefreshRiskScore recomputes the derived deadline risk for track B orders.
// The score ramps linearly from 0 to 1 as the deadline approaches over the
// risk horizon; a missed deadline pins it at 1. Track A orders stay at 0.
func (o *Order) RefreshRiskScore(now time.Time) {
	if o.track != TrackB || o.deadline == nil {
		o.riskScore = 0
		return
	}

	remaining := o.deadline.Sub(now)
	if remaining <= 0 {
		o.riskScore = 1
		return
	}
	if remaining >= riskHorizon {
		o.riskScore = 0
		return
	}

	o.riskScore = 1 - remaining.Seconds()/riskHorizon.Seconds()
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTrack validates and sets the order's fulfillment track.
func (o *Order) setTrack(track Track) error {
	if err := track.Validate(); err != nil {
		return err
	}
	o.track = track
	return nil
}

// setDeadline enforces that track B orders carry a delivery cutoff.
func (o *Order) setDeadline(track Track, deadline *time.Time) error {
	if track == TrackB && deadline == nil {
		return ErrDeadlineIsRequired
	}
	o.deadline = deadline
	return nil
}
