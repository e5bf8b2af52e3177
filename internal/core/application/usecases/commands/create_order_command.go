package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// ItemSpec describes one garment line of a new order.
type ItemSpec struct {
	Quantity     int
	UnitPrice    kernel.Money
	IsBackupSuit bool
}

// CreateOrderCommand represents a paid order entering the fulfillment
// pipeline. Orders are only registered after payment, so every new order
// starts in the first lifecycle state.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.TrackB, total, &deadline, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	track    order.Track
	total    kernel.Money
	deadline *time.Time
	items    []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a paid order.
// Validates the order ID, the track, and that at least one item is present.
// Deadline requirements and item-level rules are enforced by the aggregates.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	track order.Track,
	total kernel.Money,
	deadline *time.Time,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrack(track),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.total = total
	cmd.deadline = deadline
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Track returns the fulfillment track the order runs on.
func (c CreateOrderCommand) Track() order.Track {
	return c.track
}

// Total returns the order's total amount.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// Deadline returns the promised delivery deadline, or nil when the track has none.
func (c CreateOrderCommand) Deadline() *time.Time {
	return c.deadline
}

// Items returns the garment lines of the order.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTrack(track order.Track) error {
	if err := track.Validate(); err != nil {
		return err
	}

	c.track = track
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
