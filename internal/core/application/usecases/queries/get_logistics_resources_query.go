package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/logistics"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetQcStationsQueryIsNotConstructed = errors.New(
		"GetQcStationsQuery must be created via NewGetQcStationsQuery constructor",
	)
	ErrGetVansQueryIsNotConstructed = errors.New(
		"GetVansQuery must be created via NewGetVansQuery constructor",
	)
	ErrGetFlightsQueryIsNotConstructed = errors.New(
		"GetFlightsQuery must be created via NewGetFlightsQuery constructor",
	)
)

// GetQcStationsQuery lists QC stations, optionally only those with spare
// throughput in a given zone.
type GetQcStationsQuery struct { //nolint:recvcheck //using for validation
	availableOnly bool
	zone          string

	guard guard.ConstructorGuard
}

// NewGetQcStationsQuery creates a QC station listing query.
func NewGetQcStationsQuery(availableOnly bool, zone string) GetQcStationsQuery {
	return GetQcStationsQuery{
		availableOnly: availableOnly,
		zone:          zone,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetQcStationsQuery) Validate() error {
	return q.guard.Validate(ErrGetQcStationsQueryIsNotConstructed)
}

// AvailableOnly reports whether full or inactive stations are excluded.
func (q GetQcStationsQuery) AvailableOnly() bool { return q.availableOnly }

// Zone returns the optional zone restriction.
func (q GetQcStationsQuery) Zone() string { return q.zone }

// GetQcStationsQueryResponse is one QC station row in the read model.
type GetQcStationsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Zone        string
	Capacity    int
	CurrentLoad int
	IsActive    bool
}

// GetVansQuery lists delivery vans, optionally only those ready to load.
type GetVansQuery struct { //nolint:recvcheck //using for validation
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetVansQuery creates a van listing query.
func NewGetVansQuery(availableOnly bool) GetVansQuery {
	return GetVansQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetVansQuery) Validate() error {
	return q.guard.Validate(ErrGetVansQueryIsNotConstructed)
}

// AvailableOnly reports whether only vans in AVAILABLE status with spare load
// are included.
func (q GetVansQuery) AvailableOnly() bool { return q.availableOnly }

// GetVansQueryResponse is one van row in the read model.
type GetVansQueryResponse struct {
	ID           kernel.UUID
	LicensePlate string
	DriverName   string
	Capacity     int
	CurrentLoad  int
	Status       logistics.VanStatus
}

// GetFlightsQuery lists charter flights, optionally only those still taking
// garments onto the manifest.
type GetFlightsQuery struct { //nolint:recvcheck //using for validation
	loadableOnly bool

	guard guard.ConstructorGuard
}

// NewGetFlightsQuery creates a flight listing query.
func NewGetFlightsQuery(loadableOnly bool) GetFlightsQuery {
	return GetFlightsQuery{
		loadableOnly: loadableOnly,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFlightsQuery) Validate() error {
	return q.guard.Validate(ErrGetFlightsQueryIsNotConstructed)
}

// LoadableOnly reports whether only flights with manifest space still on the
// ground are included.
func (q GetFlightsQuery) LoadableOnly() bool { return q.loadableOnly }

// GetFlightsQueryResponse is one flight row in the read model.
type GetFlightsQueryResponse struct {
	ID                 kernel.UUID
	FlightNumber       string
	DepartureAirport   string
	ArrivalAirport     string
	ScheduledDeparture time.Time
	Capacity           int
	GarmentsOnBoard    int
	Status             logistics.FlightStatus
}
