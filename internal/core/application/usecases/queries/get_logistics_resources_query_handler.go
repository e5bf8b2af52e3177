package queries

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/logistics"

	"gorm.io/gorm"
)

// GetQcStationsQueryHandler lists QC stations from the database.
type GetQcStationsQueryHandler struct {
	db *gorm.DB
}

// NewGetQcStationsQueryHandler creates a handler for QC station listing queries.
func NewGetQcStationsQueryHandler(db *gorm.DB) GetQcStationsQueryHandler {
	return GetQcStationsQueryHandler{db: db}
}

// Handle executes the listing query, sorted by name.
func (h GetQcStationsQueryHandler) Handle(
	ctx context.Context,
	query GetQcStationsQuery,
) ([]GetQcStationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			zone,
			capacity,
			current_load,
			is_active
		FROM qc_stations
		WHERE 1=1
	`
	args := make([]any, 0, 1)
	if query.AvailableOnly() {
		sql += ` AND is_active AND current_load < capacity`
	}
	if query.Zone() != "" {
		sql += ` AND zone = ?`
		args = append(args, query.Zone())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]GetQcStationsQueryResponse, 0)
	for rows.Next() {
		var resp GetQcStationsQueryResponse
		var id string

		err = rows.Scan(&id, &resp.Name, &resp.Zone, &resp.Capacity, &resp.CurrentLoad, &resp.IsActive)
		if err != nil {
			return nil, err
		}

		stationID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = stationID
		stations = append(stations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}

// GetVansQueryHandler lists delivery vans from the database.
type GetVansQueryHandler struct {
	db *gorm.DB
}

// NewGetVansQueryHandler creates a handler for van listing queries.
func NewGetVansQueryHandler(db *gorm.DB) GetVansQueryHandler {
	return GetVansQueryHandler{db: db}
}

// Handle executes the listing query, sorted by license plate.
func (h GetVansQueryHandler) Handle(
	ctx context.Context,
	query GetVansQuery,
) ([]GetVansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			license_plate,
			driver_name,
			capacity,
			current_load,
			status
		FROM vans
	`
	if query.AvailableOnly() {
		sql += ` WHERE status = 'AVAILABLE' AND current_load < capacity`
	}
	sql += ` ORDER BY license_plate`

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vans := make([]GetVansQueryResponse, 0)
	for rows.Next() {
		var resp GetVansQueryResponse
		var id, status string

		err = rows.Scan(&id, &resp.LicensePlate, &resp.DriverName, &resp.Capacity, &resp.CurrentLoad, &status)
		if err != nil {
			return nil, err
		}

		vanID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vanID
		resp.Status = logistics.VanStatus(status)
		vans = append(vans, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vans, nil
}

// GetFlightsQueryHandler lists charter flights from the database.
type GetFlightsQueryHandler struct {
	db *gorm.DB
}

// NewGetFlightsQueryHandler creates a handler for flight listing queries.
func NewGetFlightsQueryHandler(db *gorm.DB) GetFlightsQueryHandler {
	return GetFlightsQueryHandler{db: db}
}

// Handle executes the listing query, sorted by scheduled departure.
func (h GetFlightsQueryHandler) Handle(
	ctx context.Context,
	query GetFlightsQuery,
) ([]GetFlightsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			flight_number,
			departure_airport,
			arrival_airport,
			scheduled_departure,
			capacity,
			garments_on_board,
			status
		FROM flights
	`
	if query.LoadableOnly() {
		sql += ` WHERE status IN ('SCHEDULED', 'LOADING') AND garments_on_board < capacity`
	}
	sql += ` ORDER BY scheduled_departure`

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]GetFlightsQueryResponse, 0)
	for rows.Next() {
		var resp GetFlightsQueryResponse
		var id, status string
		var departure time.Time

		err = rows.Scan(
			&id,
			&resp.FlightNumber,
			&resp.DepartureAirport,
			&resp.ArrivalAirport,
			&departure,
			&resp.Capacity,
			&resp.GarmentsOnBoard,
			&status,
		)
		if err != nil {
			return nil, err
		}

		flightID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = flightID
		resp.ScheduledDeparture = departure
		resp.Status = logistics.FlightStatus(status)
		flights = append(flights, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return flights, nil
}
