package ports

import (
	"context"

	"atelier/internal/core/domain/model/logistics"
)

// LogisticsRepository defines read access to the capacity-bounded logistics
// resources of the hub-manufactured track. Transition guards consult it to
// confirm a resource exists before an order may enter the state that
// consumes it.
type LogisticsRepository interface {
	// GetAvailableQcStations retrieves active QC stations with spare
	// throughput, optionally restricted to one zone.
	GetAvailableQcStations(ctx context.Context, zone string) ([]*logistics.QcStation, error)

	// GetAvailableVans retrieves vans in AVAILABLE status with spare load.
	GetAvailableVans(ctx context.Context) ([]*logistics.Van, error)

	// GetLoadableFlights retrieves flights still on the ground with manifest
	// space remaining.
	GetLoadableFlights(ctx context.Context) ([]*logistics.Flight, error)
}
