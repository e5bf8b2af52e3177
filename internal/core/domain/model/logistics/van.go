package logistics

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrVanIsNotConstructed is returned when a Van was not created through its
// factory functions.
var ErrVanIsNotConstructed = errors.New("Van must be created via NewVan constructor")

// VanStatus is a delivery van's operational status.
type VanStatus string

const (
	VanAvailable  VanStatus = "AVAILABLE"
	VanEnRoute    VanStatus = "EN_ROUTE"
	VanDelivering VanStatus = "DELIVERING"
	VanReturning  VanStatus = "RETURNING"
	VanOffline    VanStatus = "OFFLINE"
)

// Validate checks that the status is one of the known values.
func (s VanStatus) Validate() error {
	switch s {
	case VanAvailable, VanEnRoute, VanDelivering, VanReturning, VanOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vanStatus",
			fmt.Errorf("%q is not a valid van status", string(s)))
	}
}

// Van is a last-mile delivery vehicle with a bounded garment load.
type Van struct {
	id           kernel.UUID
	licensePlate string
	driverName   string
	capacity     int
	currentLoad  int
	status       VanStatus
	guard        guard.ConstructorGuard
}

// NewVan creates an available, empty van.
func NewVan(id kernel.UUID, licensePlate, driverName string, capacity int) (*Van, error) {
	return RestoreVan(id, licensePlate, driverName, capacity, 0, VanAvailable)
}

// RestoreVan reconstructs a Van from persistent storage.
func RestoreVan(id kernel.UUID, licensePlate, driverName string, capacity, currentLoad int, status VanStatus) (*Van, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if licensePlate == "" {
		return nil, errs.NewValueIsRequiredError("licensePlate")
	}
	if driverName == "" {
		return nil, errs.NewValueIsRequiredError("driverName")
	}
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidError("capacity")
	}
	if currentLoad < 0 || currentLoad > capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, capacity)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Van{
		id:           id,
		licensePlate: licensePlate,
		driverName:   driverName,
		capacity:     capacity,
		currentLoad:  currentLoad,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Van instance was properly constructed.
func (v *Van) Validate() error {
	if v == nil {
		return ErrVanIsNotConstructed
	}
	return v.guard.Validate(ErrVanIsNotConstructed)
}

func (v *Van) ID() kernel.UUID      { return v.id }
func (v *Van) LicensePlate() string { return v.licensePlate }
func (v *Van) DriverName() string   { return v.driverName }
func (v *Van) Capacity() int        { return v.capacity }
func (v *Van) CurrentLoad() int     { return v.currentLoad }
func (v *Van) Status() VanStatus    { return v.status }

// IsAvailable reports whether the van can take another garment:
// in AVAILABLE status and below capacity.
func (v *Van) IsAvailable() bool {
	return v.status == VanAvailable && v.currentLoad < v.capacity
}
