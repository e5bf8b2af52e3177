package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/timeline"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order in its initial state together with its items and the
// creation audit record, all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the order aggregate and one item aggregate per line, then writes the
// order, its items, and a creation timeline record atomically.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Track(), cmd.Total(), cmd.Deadline())
	if err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), newOrder.ID(), spec.Quantity, spec.UnitPrice, spec.IsBackupSuit)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	record, err := timeline.NewTransitionRecord(
		newOrder.ID(), nil, newOrder.State(), timeline.ActorSystem, "order created", time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, item := range items {
		if err = itemRepo.Add(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.TimelineRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
