package logistics

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrFlightIsNotConstructed is returned when a Flight was not created through
// its factory functions.
var ErrFlightIsNotConstructed = errors.New("Flight must be created via NewFlight constructor")

// FlightStatus is a charter flight's lifecycle status.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "SCHEDULED"
	FlightLoading   FlightStatus = "LOADING"
	FlightInFlight  FlightStatus = "IN_FLIGHT"
	FlightLanded    FlightStatus = "LANDED"
	FlightCompleted FlightStatus = "COMPLETED"
	FlightCancelled FlightStatus = "CANCELLED"
)

// Validate checks that the status is one of the known values.
func (s FlightStatus) Validate() error {
	switch s {
	case FlightScheduled, FlightLoading, FlightInFlight, FlightLanded, FlightCompleted, FlightCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("flightStatus",
			fmt.Errorf("%q is not a valid flight status", string(s)))
	}
}

// Flight is a scheduled charter flight carrying finished garments to the hub.
// The manifest is bounded by the aircraft's garment capacity.
type Flight struct {
	id                 kernel.UUID
	flightNumber       string
	departureAirport   string
	arrivalAirport     string
	scheduledDeparture time.Time
	capacity           int
	garmentsOnBoard    int
	status             FlightStatus
	guard              guard.ConstructorGuard
}

// NewFlight creates a scheduled flight with an empty manifest.
func NewFlight(
	id kernel.UUID,
	flightNumber, departureAirport, arrivalAirport string,
	scheduledDeparture time.Time,
	capacity int,
) (*Flight, error) {
	return RestoreFlight(id, flightNumber, departureAirport, arrivalAirport,
		scheduledDeparture, capacity, 0, FlightScheduled)
}

// RestoreFlight reconstructs a Flight from persistent storage.
func RestoreFlight(
	id kernel.UUID,
	flightNumber, departureAirport, arrivalAirport string,
	scheduledDeparture time.Time,
	capacity, garmentsOnBoard int,
	status FlightStatus,
) (*Flight, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if flightNumber == "" {
		return nil, errs.NewValueIsRequiredError("flightNumber")
	}
	if departureAirport == "" || arrivalAirport == "" {
		return nil, errs.NewValueIsRequiredError("airport")
	}
	if scheduledDeparture.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledDeparture")
	}
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidError("capacity")
	}
	if garmentsOnBoard < 0 || garmentsOnBoard > capacity {
		return nil, errs.NewValueIsOutOfRangeError("garmentsOnBoard", garmentsOnBoard, 0, capacity)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Flight{
		id:                 id,
		flightNumber:       flightNumber,
		departureAirport:   departureAirport,
		arrivalAirport:     arrivalAirport,
		scheduledDeparture: scheduledDeparture,
		capacity:           capacity,
		garmentsOnBoard:    garmentsOnBoard,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Flight instance was properly constructed.
func (f *Flight) Validate() error {
	if f == nil {
		return ErrFlightIsNotConstructed
	}
	return f.guard.Validate(ErrFlightIsNotConstructed)
}

func (f *Flight) ID() kernel.UUID               { return f.id }
func (f *Flight) FlightNumber() string          { return f.flightNumber }
func (f *Flight) DepartureAirport() string      { return f.departureAirport }
func (f *Flight) ArrivalAirport() string        { return f.arrivalAirport }
func (f *Flight) ScheduledDeparture() time.Time { return f.scheduledDeparture }
func (f *Flight) Capacity() int                 { return f.capacity }
func (f *Flight) GarmentsOnBoard() int          { return f.garmentsOnBoard }
func (f *Flight) Status() FlightStatus          { return f.status }

// HasManifestSpace reports whether the flight can take another garment while
// it is still on the ground being loaded.
func (f *Flight) HasManifestSpace() bool {
	return (f.status == FlightScheduled || f.status == FlightLoading) &&
		f.garmentsOnBoard < f.capacity
}
