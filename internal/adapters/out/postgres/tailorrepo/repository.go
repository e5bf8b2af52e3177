package tailorrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/ports"
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

// GormTailorRepository implements TailorRepository using GORM.
type GormTailorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTailorRepository creates a new GORM tailor repository.
func NewGormTailorRepository(db *gorm.DB, tracker aggregateTracker) *GormTailorRepository {
	return &GormTailorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tailor to the database.
func (r *GormTailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
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

// Update saves an existing tailor to the database. The job counter is
// excluded; it is only ever written through IncrementJobCount and
// DecrementJobCount.
func (r *GormTailorRepository) Update(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TailorDTO{}).Where("id = ?", dto.ID).
		Select("name", "skill_level", "qc_pass_rate", "max_concurrent_jobs", "zone", "is_active").
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

// Get retrieves a tailor by ID.
func (r *GormTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TailorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tailor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves tailors matching the filter, ordered by ID for stable
// selection tie-breaking.
func (r *GormTailorRepository) GetAll(ctx context.Context, filter ports.TailorFilter) ([]*tailor.Tailor, error) {
	query := r.db.WithContext(ctx).Model(&TailorDTO{})
	if filter.Zone != "" {
		query = query.Where("zone = ?", filter.Zone)
	}
	if filter.SkillLevel != "" {
		query = query.Where("skill_level = ?", string(filter.SkillLevel))
	}
	if filter.AvailableOnly {
		query = query.Where("is_active AND current_job_count < max_concurrent_jobs")
	}

	var dtos []TailorDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tailors := make([]*tailor.Tailor, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tailors = append(tailors, t)
	}

	return tailors, nil
}

// IncrementJobCount atomically takes one capacity slot. The WHERE clause
// re-checks capacity inside the statement, so a tailor that filled up since
// selection yields zero affected rows instead of an oversubscribed counter.
func (r *GormTailorRepository) IncrementJobCount(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE tailors
		SET current_job_count = current_job_count + 1
		WHERE id = ? AND current_job_count < max_concurrent_jobs
	`, id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.resolveCounterConflict(ctx, id, tailor.ErrNoSpareCapacity)
	}

	return nil
}

// DecrementJobCount atomically releases one capacity slot. The WHERE clause
// keeps the counter from going negative when a release is replayed.
func (r *GormTailorRepository) DecrementJobCount(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE tailors
		SET current_job_count = current_job_count - 1
		WHERE id = ? AND current_job_count > 0
	`, id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.resolveCounterConflict(ctx, id, tailor.ErrNoJobsInProgress)
	}

	return nil
}

// resolveCounterConflict distinguishes a missing tailor from a counter that
// refused to move.
func (r *GormTailorRepository) resolveCounterConflict(ctx context.Context, id kernel.UUID, conflict error) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TailorDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("tailor", id.String())
	}
	return conflict
}
