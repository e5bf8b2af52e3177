package timelinerepo

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/timeline"

	"gorm.io/gorm"
)

// GormTimelineRepository implements TimelineRepository using GORM.
// Records are only ever inserted; the history is immutable once written.
type GormTimelineRepository struct {
	db *gorm.DB
}

// NewGormTimelineRepository creates a new GORM timeline repository.
func NewGormTimelineRepository(db *gorm.DB) *GormTimelineRepository {
	return &GormTimelineRepository{db: db}
}

// Add saves a new transition record to the database.
func (r *GormTimelineRepository) Add(ctx context.Context, record *timeline.TransitionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves an order's full history, oldest first. Ties on the
// timestamp are broken by ID so replays read back in a stable order.
func (r *GormTimelineRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*timeline.TransitionRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionRecordDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*timeline.TransitionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
