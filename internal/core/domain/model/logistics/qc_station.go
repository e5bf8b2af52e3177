package logistics

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrQcStationIsNotConstructed is returned when a QcStation was not created
// through its factory functions.
var ErrQcStationIsNotConstructed = errors.New("QcStation must be created via NewQcStation constructor")

// QcStation is a quality-control checkpoint with bounded throughput.
type QcStation struct {
	id          kernel.UUID
	name        string
	zone        string
	capacity    int
	currentLoad int
	isActive    bool
	guard       guard.ConstructorGuard
}

// NewQcStation creates an active, empty QC station.
func NewQcStation(id kernel.UUID, name, zone string, capacity int) (*QcStation, error) {
	return RestoreQcStation(id, name, zone, capacity, 0, true)
}

// RestoreQcStation reconstructs a QcStation from persistent storage.
func RestoreQcStation(id kernel.UUID, name, zone string, capacity, currentLoad int, isActive bool) (*QcStation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidError("capacity")
	}
	if currentLoad < 0 || currentLoad > capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, capacity)
	}

	return &QcStation{
		id:          id,
		name:        name,
		zone:        zone,
		capacity:    capacity,
		currentLoad: currentLoad,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the QcStation instance was properly constructed.
func (q *QcStation) Validate() error {
	if q == nil {
		return ErrQcStationIsNotConstructed
	}
	return q.guard.Validate(ErrQcStationIsNotConstructed)
}

func (q *QcStation) ID() kernel.UUID  { return q.id }
func (q *QcStation) Name() string     { return q.name }
func (q *QcStation) Zone() string     { return q.zone }
func (q *QcStation) Capacity() int    { return q.capacity }
func (q *QcStation) CurrentLoad() int { return q.currentLoad }
func (q *QcStation) IsActive() bool   { return q.isActive }

// IsAvailable reports whether the station can accept another garment:
// active and below capacity.
func (q *QcStation) IsAvailable() bool {
	return q.isActive && q.currentLoad < q.capacity
}
