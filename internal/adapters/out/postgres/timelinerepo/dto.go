// Package timelinerepo provides data transfer objects and mapping functions
// for the append-only order state history.
package timelinerepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/timeline"

	"github.com/google/uuid"
)

// TransitionRecordDTO represents the database structure for persisting
// transition records. FromState is NULL for the record written at order
// creation.
type TransitionRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromState  *string   `gorm:"type:varchar(32)"`
	ToState    string    `gorm:"type:varchar(32);not null"`
	Actor      string    `gorm:"type:varchar(255);not null"`
	Note       string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for transition record entities.
func (TransitionRecordDTO) TableName() string {
	return "order_state_transitions"
}

// fromDomain converts a transition record to its database representation.
func fromDomain(record *timeline.TransitionRecord) TransitionRecordDTO {
	var fromState *string
	if from := record.FromState(); from != nil {
		s := string(*from)
		fromState = &s
	}

	return TransitionRecordDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.OrderID().Bytes(),
		FromState:  fromState,
		ToState:    string(record.ToState()),
		Actor:      record.Actor(),
		Note:       record.Note(),
		OccurredAt: record.OccurredAt(),
	}
}

// toDomain converts a database DTO to a transition record.
func toDomain(dto TransitionRecordDTO) (*timeline.TransitionRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var fromState *order.State
	if dto.FromState != nil {
		from := order.State(*dto.FromState)
		fromState = &from
	}

	return timeline.RestoreTransitionRecord(
		id,
		orderID,
		fromState,
		order.State(dto.ToState),
		dto.Actor,
		dto.Note,
		dto.OccurredAt,
	)
}
