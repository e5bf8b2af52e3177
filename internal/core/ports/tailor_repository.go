package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
)

// TailorFilter narrows tailor pool queries. Zero-valued fields are ignored.
type TailorFilter struct {
	// Zone restricts the pool to one workshop zone when non-empty.
	Zone string

	// SkillLevel restricts the pool to one skill level when non-empty.
	SkillLevel tailor.SkillLevel

	// AvailableOnly keeps only active tailors with spare capacity.
	AvailableOnly bool
}

// TailorRepository defines the persistence contract for tailor aggregates.
//
// Job counters are adjusted through IncrementJobCount and DecrementJobCount
// rather than Update so that capacity checks happen in storage, atomically
// with the counter change. Two transactions racing for a tailor's last slot
// cannot both win.
type TailorRepository interface {
	// Add persists a new tailor aggregate to storage.
	Add(ctx context.Context, aggregate *tailor.Tailor) error

	// Update persists changes to an existing tailor aggregate.
	// The job counter is not written by Update.
	Update(ctx context.Context, aggregate *tailor.Tailor) error

	// Get retrieves a tailor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// GetAll retrieves tailors matching the filter.
	GetAll(ctx context.Context, filter TailorFilter) ([]*tailor.Tailor, error)

	// IncrementJobCount atomically increments a tailor's job counter, but only
	// while the counter is below the tailor's capacity. Returns
	// tailor.ErrNoSpareCapacity when the tailor is already full, in which case
	// the counter is left untouched and the caller must abort its transaction.
	IncrementJobCount(ctx context.Context, id kernel.UUID) error

	// DecrementJobCount atomically decrements a tailor's job counter, but only
	// while the counter is above zero. Returns tailor.ErrNoJobsInProgress when
	// there is nothing to release.
	DecrementJobCount(ctx context.Context, id kernel.UUID) error
}
