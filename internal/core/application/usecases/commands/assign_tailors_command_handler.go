package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/timeline"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// ErrOrderItemNotFound reports an assignment request for an unknown item.
var ErrOrderItemNotFound = errors.New("order item not found")

// AssignTailorsResult reports the committed pair with its score breakdowns.
type AssignTailorsResult struct {
	Primary services.RankedTailor
	Backup  services.RankedTailor
}

// AssignTailorsCommandHandler orchestrates dual tailor assignment.
//
// The selection itself is advisory until commit: the pair is chosen from a
// snapshot of the pool, then pinned to the item through a conditional update
// that refuses an item whose pair was set since the snapshot, and each
// tailor's job counter is incremented through a conditional update that
// re-checks capacity in storage. If either guard fails, the whole transaction
// rolls back, leaving the item and the counters untouched.
//
// An item that already carries a pair short-circuits before any counter is
// touched, returning the existing pair on the error.
type AssignTailorsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	selector   services.TailorSelector
}

// NewAssignTailorsCommandHandler creates a handler for dual tailor assignment.
// Requires an AssignmentUoWFactory for coordinating transactional updates.
func NewAssignTailorsCommandHandler(uowFactory AssignmentUoWFactory) AssignTailorsCommandHandler {
	return AssignTailorsCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewTailorSelector(),
	}
}

// Handle processes the assignment command.
// Returns ErrOrderItemNotFound for unknown items, TailorsAlreadyAssignedError
// (with the existing pair) for repeated requests, NotEnoughTailorsError when
// fewer than two candidates are available, and tailor.ErrNoSpareCapacity when
// a commit-time capacity re-check fails.
func (h AssignTailorsCommandHandler) Handle(ctx context.Context, cmd AssignTailorsCommand) (AssignTailorsResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignTailorsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignTailorsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.ItemRepository().Get(ctx, cmd.OrderItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignTailorsResult{}, ErrOrderItemNotFound
	}
	if err != nil {
		return AssignTailorsResult{}, err
	}

	if item.IsAssigned() {
		return AssignTailorsResult{}, order.NewTailorsAlreadyAssignedError(
			*item.PrimaryTailor(), *item.BackupTailor())
	}

	ord, err := uow.OrderRepository().Get(ctx, item.OrderID())
	if err != nil {
		return AssignTailorsResult{}, err
	}

	tailorRepo := uow.TailorRepository()
	candidates, err := tailorRepo.GetAll(ctx, ports.TailorFilter{
		Zone:          cmd.Zone(),
		AvailableOnly: true,
	})
	if err != nil {
		return AssignTailorsResult{}, err
	}

	primary, backup, err := h.selector.SelectPair(candidates)
	if err != nil {
		return AssignTailorsResult{}, err
	}

	if err = item.AssignTailors(primary.Tailor.ID(), backup.Tailor.ID()); err != nil {
		return AssignTailorsResult{}, err
	}

	// The conditional write loses against a concurrent assignment that set
	// the pair after our snapshot, surfacing the stored pair before any
	// counter is touched.
	if err = uow.ItemRepository().UpdateAssignment(ctx, item); err != nil {
		return AssignTailorsResult{}, err
	}

	// Capacity re-validation happens here, not at selection time.
	if err = tailorRepo.IncrementJobCount(ctx, primary.Tailor.ID()); err != nil {
		return AssignTailorsResult{}, err
	}
	if err = tailorRepo.IncrementJobCount(ctx, backup.Tailor.ID()); err != nil {
		return AssignTailorsResult{}, err
	}

	state := ord.State()
	record, err := timeline.NewTransitionRecord(
		ord.ID(), &state, state, timeline.ActorSystem,
		fmt.Sprintf("tailors assigned to item %s: primary %s, backup %s",
			item.ID(), primary.Tailor.ID(), backup.Tailor.ID()),
		time.Now().UTC())
	if err != nil {
		return AssignTailorsResult{}, err
	}

	if err = uow.TimelineRepository().Add(ctx, record); err != nil {
		return AssignTailorsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignTailorsResult{}, err
	}

	return AssignTailorsResult{Primary: primary, Backup: backup}, nil
}
