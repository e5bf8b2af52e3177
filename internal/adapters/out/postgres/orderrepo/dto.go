// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate and its items, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// efficient querying by track and state.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Track         string          `gorm:"type:varchar(32);not null;index"`
	State         string          `gorm:"type:varchar(32);not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalCurrency string          `gorm:"type:varchar(3);not null"`
	Deadline      *time.Time
	RiskScore     float64 `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order items.
// Links to its order via foreign key and optionally references the assigned
// tailor pair.
type ItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity          int             `gorm:"type:int;not null"`
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UnitPriceCurrency string          `gorm:"type:varchar(3);not null"`
	IsBackupSuit      bool            `gorm:"not null"`
	PrimaryTailorID   *uuid.UUID      `gorm:"type:uuid;index"`
	BackupTailorID    *uuid.UUID      `gorm:"type:uuid"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Track:         string(aggregate.Track()),
		State:         string(aggregate.State()),
		TotalAmount:   aggregate.Total().Amount(),
		TotalCurrency: aggregate.Total().Currency(),
		Deadline:      aggregate.Deadline(),
		RiskScore:     aggregate.RiskScore(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including state and risk score using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount, dto.TotalCurrency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Track(dto.Track),
		order.State(dto.State),
		total,
		dto.Deadline,
		dto.RiskScore,
	)
}

// itemFromDomain converts an order item to its database representation.
func itemFromDomain(item *order.Item) ItemDTO {
	var primaryID, backupID *uuid.UUID
	if id := item.PrimaryTailor(); id != nil {
		raw := id.Bytes()
		primaryID = &raw
	}
	if id := item.BackupTailor(); id != nil {
		raw := id.Bytes()
		backupID = &raw
	}

	return ItemDTO{
		ID:                item.ID().Bytes(),
		OrderID:           item.OrderID().Bytes(),
		Quantity:          item.Quantity(),
		UnitPriceAmount:   item.UnitPrice().Amount(),
		UnitPriceCurrency: item.UnitPrice().Currency(),
		IsBackupSuit:      item.IsBackupSuit(),
		PrimaryTailorID:   primaryID,
		BackupTailorID:    backupID,
	}
}

// itemToDomain converts a database DTO to an order item entity.
// Reconstructs any existing tailor assignment using RestoreItem.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceAmount, dto.UnitPriceCurrency)
	if err != nil {
		return nil, err
	}

	var primaryID, backupID *kernel.UUID
	if dto.PrimaryTailorID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PrimaryTailorID)[:])
		if pErr != nil {
			return nil, pErr
		}
		primaryID = &pID
	}
	if dto.BackupTailorID != nil {
		bID, bErr := kernel.UUIDFromBytes((*dto.BackupTailorID)[:])
		if bErr != nil {
			return nil, bErr
		}
		backupID = &bID
	}

	return order.RestoreItem(id, orderID, dto.Quantity, unitPrice, dto.IsBackupSuit, primaryID, backupID)
}
