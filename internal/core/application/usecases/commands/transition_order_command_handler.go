package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/timeline"
	"atelier/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrNoLogisticsResource is the sentinel for transitions into a state
	// whose logistics resource pool is exhausted.
	ErrNoLogisticsResource = errors.New("no logistics resource available")
)

// NoLogisticsResourceError reports which resource pool blocked a transition.
type NoLogisticsResourceError struct {
	Resource string
	Target   order.State
}

// NewNoLogisticsResourceError creates a NoLogisticsResourceError for the given pool and target state.
func NewNoLogisticsResourceError(resource string, target order.State) *NoLogisticsResourceError {
	return &NoLogisticsResourceError{Resource: resource, Target: target}
}

func (e *NoLogisticsResourceError) Error() string {
	return fmt.Sprintf("%s: no %s available for transition to %s", ErrNoLogisticsResource, e.Resource, e.Target)
}

func (e *NoLogisticsResourceError) Unwrap() error {
	return ErrNoLogisticsResource
}

// TransitionOrderCommandHandler orchestrates a single order state transition.
//
// The order update and its audit record share one transaction: a committed
// transition always has exactly one timeline entry, a rejected one has none.
// States that consume a logistics resource (QC station, flight manifest slot,
// delivery van) are guarded by an availability check before the transition is
// applied, and passing QC releases the tailor pair's capacity.
type TransitionOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order state transitions.
// Requires a TransitionUoWFactory for coordinating transactional updates.
func NewTransitionOrderCommandHandler(uowFactory TransitionUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Loads the order, checks the logistics guard for resource-consuming targets,
// applies the transition through the aggregate, releases tailor capacity on QC
// pass, and commits the order update together with one audit record.
// Returns ErrOrderNotFound for unknown orders; transition rejections surface
// as the aggregate's typed errors.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = h.checkLogisticsGuard(ctx, uow, cmd.Target()); err != nil {
		return err
	}

	fromState := ord.State()
	if err = ord.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.StateQCPassed {
		if err = h.releaseTailorPair(ctx, uow, ord.ID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	record, err := timeline.NewTransitionRecord(
		ord.ID(), &fromState, ord.State(), cmd.Actor(), cmd.Note(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.TimelineRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkLogisticsGuard confirms the resource pool behind the target state has
// spare capacity. States without a logistics resource pass through.
func (h TransitionOrderCommandHandler) checkLogisticsGuard(ctx context.Context, uow TransitionUoW, target order.State) error {
	logisticsRepo := uow.LogisticsRepository()

	switch target {
	case order.StateQCInProgress:
		stations, err := logisticsRepo.GetAvailableQcStations(ctx, "")
		if err != nil {
			return err
		}
		if len(stations) == 0 {
			return NewNoLogisticsResourceError("qc station", target)
		}
	case order.StateFlightManifest:
		flights, err := logisticsRepo.GetLoadableFlights(ctx)
		if err != nil {
			return err
		}
		if len(flights) == 0 {
			return NewNoLogisticsResourceError("flight", target)
		}
	case order.StateVanAssigned:
		vans, err := logisticsRepo.GetAvailableVans(ctx)
		if err != nil {
			return err
		}
		if len(vans) == 0 {
			return NewNoLogisticsResourceError("van", target)
		}
	}

	return nil
}

// releaseTailorPair frees the job slots held by the order's tailor pair once
// the garments clear QC. Each distinct tailor is released exactly once even
// when several items reference the same pair.
func (h TransitionOrderCommandHandler) releaseTailorPair(ctx context.Context, uow TransitionUoW, orderID kernel.UUID) error {
	items, err := uow.ItemRepository().GetByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	released := make(map[string]struct{})
	tailorRepo := uow.TailorRepository()

	for _, item := range items {
		if !item.IsAssigned() {
			continue
		}
		for _, id := range []kernel.UUID{*item.PrimaryTailor(), *item.BackupTailor()} {
			if _, done := released[id.String()]; done {
				continue
			}
			if err = tailorRepo.DecrementJobCount(ctx, id); err != nil {
				return err
			}
			released[id.String()] = struct{}{}
		}
	}

	return nil
}
