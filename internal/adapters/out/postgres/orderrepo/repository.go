package orderrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// isUniqueViolation reports whether the driver rejected an insert over a
// unique constraint.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return gorm.ErrDuplicatedKey
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("track", "state", "total_amount", "total_currency", "deadline", "risk_score").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveOnTrack retrieves all orders on the given track that have not
// yet reached the track's terminal state.
func (r *GormOrderRepository) GetAllActiveOnTrack(ctx context.Context, track order.Track) ([]*order.Order, error) {
	if err := track.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "track = ? AND state <> ?", string(track), string(order.TerminalState(track))).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormItemRepository creates a new GORM order item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *order.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return gorm.ErrDuplicatedKey
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing item to the database. The tailor pair columns are
// left out so a stale aggregate cannot overwrite an assignment; the pair only
// flows through UpdateAssignment.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *order.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).
		Select("quantity", "unit_price_amount", "unit_price_currency", "is_backup_suit").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAssignment writes the item's tailor pair, guarded on the stored pair
// still being empty. Two transactions racing for the same item both pass the
// in-memory check; the second one loses this condition and rolls back.
func (r *GormItemRepository) UpdateAssignment(ctx context.Context, aggregate *order.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	result := r.db.WithContext(ctx).Exec(`
		UPDATE order_items
		SET primary_tailor_id = ?, backup_tailor_id = ?
		WHERE id = ? AND primary_tailor_id IS NULL
	`, dto.PrimaryTailorID, dto.BackupTailorID, dto.ID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.resolveAssignmentConflict(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// resolveAssignmentConflict distinguishes a missing row from an item whose
// pair was set by a concurrent transaction.
func (r *GormItemRepository) resolveAssignmentConflict(ctx context.Context, id kernel.UUID) error {
	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if !stored.IsAssigned() {
		return gorm.ErrInvalidData
	}

	return order.NewTailorsAlreadyAssignedError(*stored.PrimaryTailor(), *stored.BackupTailor())
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetByOrder retrieves all items belonging to the given order.
func (r *GormItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

// GetAllUnassigned retrieves all items without a tailor pair.
func (r *GormItemRepository) GetAllUnassigned(ctx context.Context) ([]*order.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "primary_tailor_id IS NULL").Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

func itemsToDomain(dtos []ItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
