package logisticsrepo

import (
	"context"

	"atelier/internal/core/domain/model/logistics"

	"gorm.io/gorm"
)

// GormLogisticsRepository implements LogisticsRepository using GORM.
// All methods are reads; availability filtering happens in the WHERE clause
// so transition guards see the same rows a concurrent transaction would.
type GormLogisticsRepository struct {
	db *gorm.DB
}

// NewGormLogisticsRepository creates a new GORM logistics repository.
func NewGormLogisticsRepository(db *gorm.DB) *GormLogisticsRepository {
	return &GormLogisticsRepository{db: db}
}

// GetAvailableQcStations retrieves active QC stations with spare throughput,
// optionally restricted to one zone.
func (r *GormLogisticsRepository) GetAvailableQcStations(
	ctx context.Context,
	zone string,
) ([]*logistics.QcStation, error) {
	query := r.db.WithContext(ctx).Where("is_active AND current_load < capacity")
	if zone != "" {
		query = query.Where("zone = ?", zone)
	}

	var dtos []QcStationDTO
	if err := query.Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stations := make([]*logistics.QcStation, 0, len(dtos))
	for _, dto := range dtos {
		station, err := qcStationToDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	return stations, nil
}

// GetAvailableVans retrieves vans in AVAILABLE status with spare load.
func (r *GormLogisticsRepository) GetAvailableVans(ctx context.Context) ([]*logistics.Van, error) {
	var dtos []VanDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND current_load < capacity", string(logistics.VanAvailable)).
		Order("license_plate").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	vans := make([]*logistics.Van, 0, len(dtos))
	for _, dto := range dtos {
		van, err := vanToDomain(dto)
		if err != nil {
			return nil, err
		}
		vans = append(vans, van)
	}

	return vans, nil
}

// GetLoadableFlights retrieves flights still on the ground with manifest
// space remaining, soonest departure first.
func (r *GormLogisticsRepository) GetLoadableFlights(ctx context.Context) ([]*logistics.Flight, error) {
	var dtos []FlightDTO
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND garments_on_board < capacity",
			[]string{string(logistics.FlightScheduled), string(logistics.FlightLoading)}).
		Order("scheduled_departure").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	flights := make([]*logistics.Flight, 0, len(dtos))
	for _, dto := range dtos {
		flight, err := flightToDomain(dto)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}

	return flights, nil
}
