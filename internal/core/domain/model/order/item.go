package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrTailorsAlreadyAssigned is the sentinel for re-assignment attempts on an
	// item whose tailor pair is already set.
	ErrTailorsAlreadyAssigned = errors.New("tailors already assigned")

	// ErrTailorsMustBeDistinct is returned when the same tailor is offered as
	// both primary and backup; the dual-production hedge requires two resources.
	ErrTailorsMustBeDistinct = errors.New("primary and backup tailor must be distinct")
)

// TailorsAlreadyAssignedError reports an assignment attempt on an item that
// already has both tailors set. It carries the existing pair: this outcome is
// as much an "already done" answer as an error, and callers are expected to
// return the pair rather than fail opaquely.
type TailorsAlreadyAssignedError struct {
	PrimaryTailorID kernel.UUID
	BackupTailorID  kernel.UUID
}

// NewTailorsAlreadyAssignedError creates a TailorsAlreadyAssignedError carrying the existing pair.
func NewTailorsAlreadyAssignedError(primaryID, backupID kernel.UUID) *TailorsAlreadyAssignedError {
	return &TailorsAlreadyAssignedError{PrimaryTailorID: primaryID, BackupTailorID: backupID}
}

func (e *TailorsAlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: primary %s, backup %s",
		ErrTailorsAlreadyAssigned, e.PrimaryTailorID, e.BackupTailorID)
}

func (e *TailorsAlreadyAssignedError) Unwrap() error {
	return ErrTailorsAlreadyAssigned
}

// Item is one garment within an order. Track B items are produced twice in
// parallel (a primary and a contingency garment), so each item references a
// primary and a backup tailor once production is assigned.
//
// Invariants:
//   - Quantity is positive
//   - Primary and backup tailors, once set, are distinct and immutable;
//     re-assignment is refused with the existing pair
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// orderID references the owning order
	orderID kernel.UUID

	// quantity is the number of garments (positive)
	quantity int

	// unitPrice is the per-garment price
	unitPrice kernel.Money

	// isBackupSuit marks the contingency garment of a dual-production pair
	isBackupSuit bool

	// primaryTailorID is the tailor producing the primary garment (nil until assigned)
	primaryTailorID *kernel.UUID

	// backupTailorID is the tailor producing the contingency garment (nil until assigned)
	backupTailorID *kernel.UUID

	// guard ensures the item was created via a factory function
	guard guard.ConstructorGuard
}

// NewItem creates an unassigned Item belonging to the given order.
func NewItem(id, orderID kernel.UUID, quantity int, unitPrice kernel.Money, isBackupSuit bool) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setOrderID(orderID),
		it.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	it.unitPrice = unitPrice
	it.isBackupSuit = isBackupSuit
	return it, nil
}

// RestoreItem reconstructs an Item from persistent storage, including any
// existing tailor assignments.
func RestoreItem(
	id, orderID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	isBackupSuit bool,
	primaryTailorID, backupTailorID *kernel.UUID,
) (*Item, error) {
	it, err := NewItem(id, orderID, quantity, unitPrice, isBackupSuit)
	if err != nil {
		return nil, err
	}

	if primaryTailorID != nil && backupTailorID != nil {
		if err = it.AssignTailors(*primaryTailorID, *backupTailorID); err != nil {
			return nil, err
		}
	}

	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (it *Item) Validate() error {
	if it == nil {
		return ErrItemIsNotConstructed
	}
	return it.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (it *Item) ID() kernel.UUID {
	return it.id
}

// OrderID returns the identifier of the owning order.
func (it *Item) OrderID() kernel.UUID {
	return it.orderID
}

// Quantity returns the number of garments.
func (it *Item) Quantity() int {
	return it.quantity
}

// UnitPrice returns the per-garment price.
func (it *Item) UnitPrice() kernel.Money {
	return it.unitPrice
}

// IsBackupSuit reports whether this item is the contingency garment of a pair.
func (it *Item) IsBackupSuit() bool {
	return it.isBackupSuit
}

// PrimaryTailor returns the assigned primary tailor's ID, or nil if unassigned.
func (it *Item) PrimaryTailor() *kernel.UUID {
	return it.primaryTailorID
}

// BackupTailor returns the assigned backup tailor's ID, or nil if unassigned.
func (it *Item) BackupTailor() *kernel.UUID {
	return it.backupTailorID
}

// IsAssigned reports whether both tailors are set.
func (it *Item) IsAssigned() bool {
	return it.primaryTailorID != nil && it.backupTailorID != nil
}

// AssignTailors sets the primary and backup tailor pair.
//
// The pair must be two distinct resources. An item that is already assigned
// refuses re-assignment with TailorsAlreadyAssignedError carrying the existing
// pair; nothing is overwritten.
func (it *Item) AssignTailors(primaryID, backupID kernel.UUID) error {
	if err := errors.Join(primaryID.Validate(), backupID.Validate()); err != nil {
		return err
	}

	if it.IsAssigned() {
		return NewTailorsAlreadyAssignedError(*it.primaryTailorID, *it.backupTailorID)
	}

	if primaryID.IsEqual(backupID) {
		return ErrTailorsMustBeDistinct
	}

	it.primaryTailorID = &primaryID
	it.backupTailorID = &backupID
	return nil
}

// setID validates and sets the item's unique identifier.
func (it *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	it.id = id
	return nil
}

// setOrderID validates and sets the owning order reference.
func (it *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	it.orderID = orderID
	return nil
}

// setQuantity validates and sets the garment count.
func (it *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	it.quantity = quantity
	return nil
}
