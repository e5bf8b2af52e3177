// Package logisticsrepo provides data transfer objects and mapping functions
// for the capacity-bounded logistics resources: QC stations, delivery vans
// and charter flights. The repository is read-only; resource rows are
// maintained by operations tooling outside this service.
package logisticsrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/logistics"

	"github.com/google/uuid"
)

// QcStationDTO represents the database structure for QC station entities.
type QcStationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Zone        string    `gorm:"type:varchar(64);index"`
	Capacity    int       `gorm:"type:int;not null"`
	CurrentLoad int       `gorm:"type:int;not null"`
	IsActive    bool      `gorm:"not null"`
}

// TableName specifies the database table name for QC station entities.
func (QcStationDTO) TableName() string {
	return "qc_stations"
}

// VanDTO represents the database structure for delivery van entities.
type VanDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LicensePlate string    `gorm:"type:varchar(32);not null"`
	DriverName   string    `gorm:"type:varchar(255);not null"`
	Capacity     int       `gorm:"type:int;not null"`
	CurrentLoad  int       `gorm:"type:int;not null"`
	Status       string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for van entities.
func (VanDTO) TableName() string {
	return "vans"
}

// FlightDTO represents the database structure for charter flight entities.
type FlightDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FlightNumber       string    `gorm:"type:varchar(16);not null"`
	DepartureAirport   string    `gorm:"type:varchar(8);not null"`
	ArrivalAirport     string    `gorm:"type:varchar(8);not null"`
	ScheduledDeparture time.Time `gorm:"not null"`
	Capacity           int       `gorm:"type:int;not null"`
	GarmentsOnBoard    int       `gorm:"type:int;not null"`
	Status             string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for flight entities.
func (FlightDTO) TableName() string {
	return "flights"
}

// qcStationToDomain converts a database DTO to a QC station entity.
func qcStationToDomain(dto QcStationDTO) (*logistics.QcStation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return logistics.RestoreQcStation(id, dto.Name, dto.Zone, dto.Capacity, dto.CurrentLoad, dto.IsActive)
}

// vanToDomain converts a database DTO to a van entity.
func vanToDomain(dto VanDTO) (*logistics.Van, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return logistics.RestoreVan(id, dto.LicensePlate, dto.DriverName,
		dto.Capacity, dto.CurrentLoad, logistics.VanStatus(dto.Status))
}

// flightToDomain converts a database DTO to a flight entity.
func flightToDomain(dto FlightDTO) (*logistics.Flight, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return logistics.RestoreFlight(id, dto.FlightNumber, dto.DepartureAirport, dto.ArrivalAirport,
		dto.ScheduledDeparture, dto.Capacity, dto.GarmentsOnBoard, logistics.FlightStatus(dto.Status))
}
