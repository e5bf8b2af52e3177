// Package tailorrepo provides data transfer objects and mapping functions for
// tailor persistence. Job counter adjustments are implemented as conditional
// UPDATE statements so that capacity checks happen atomically in storage.
package tailorrepo

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"

	"github.com/google/uuid"
)

// TailorDTO represents the database structure for persisting tailor aggregates.
// Maps tailor domain entities to relational database tables with indexing for
// efficient pool queries by zone and availability.
type TailorDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	SkillLevel        string    `gorm:"type:varchar(32);not null"`
	QCPassRate        float64   `gorm:"column:qc_pass_rate;not null"`
	MaxConcurrentJobs int       `gorm:"type:int;not null"`
	CurrentJobCount   int       `gorm:"type:int;not null"`
	Zone              string    `gorm:"type:varchar(64);index"`
	IsActive          bool      `gorm:"not null"`
}

// TableName specifies the database table name for tailor entities.
// Overrides GORM's default naming convention to use "tailors".
func (TailorDTO) TableName() string {
	return "tailors"
}

// fromDomain converts a tailor domain aggregate to its database representation.
func fromDomain(aggregate *tailor.Tailor) TailorDTO {
	return TailorDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		SkillLevel:        string(aggregate.SkillLevel()),
		QCPassRate:        aggregate.QCPassRate(),
		MaxConcurrentJobs: aggregate.MaxConcurrentJobs(),
		CurrentJobCount:   aggregate.CurrentJobCount(),
		Zone:              aggregate.Zone(),
		IsActive:          aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a tailor domain aggregate.
// Reconstructs the complete aggregate including the job counter using RestoreTailor.
func toDomain(dto TailorDTO) (*tailor.Tailor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tailor.RestoreTailor(
		id,
		dto.Name,
		tailor.SkillLevel(dto.SkillLevel),
		dto.QCPassRate,
		dto.MaxConcurrentJobs,
		dto.CurrentJobCount,
		dto.Zone,
		dto.IsActive,
	)
}
