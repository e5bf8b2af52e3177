package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/guard"
)

var ErrGetTailorsQueryIsNotConstructed = errors.New(
	"GetTailorsQuery must be created via NewGetTailorsQuery constructor",
)

// GetTailorsQuery lists the tailor pool with optional filters.
type GetTailorsQuery struct { //nolint:recvcheck //using for validation
	availableOnly bool
	zone          string
	skillLevel    tailor.SkillLevel

	guard guard.ConstructorGuard
}

// NewGetTailorsQuery creates a tailor listing query. Empty zone and skill
// level mean no restriction.
func NewGetTailorsQuery(availableOnly bool, zone string, skillLevel tailor.SkillLevel) (GetTailorsQuery, error) {
	if skillLevel != "" {
		if err := skillLevel.Validate(); err != nil {
			return GetTailorsQuery{}, err
		}
	}

	return GetTailorsQuery{
		availableOnly: availableOnly,
		zone:          zone,
		skillLevel:    skillLevel,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTailorsQuery) Validate() error {
	return q.guard.Validate(ErrGetTailorsQueryIsNotConstructed)
}

// AvailableOnly reports whether saturated and inactive tailors are excluded.
func (q GetTailorsQuery) AvailableOnly() bool { return q.availableOnly }

// Zone returns the optional workshop zone restriction.
func (q GetTailorsQuery) Zone() string { return q.zone }

// SkillLevel returns the optional skill level restriction.
func (q GetTailorsQuery) SkillLevel() tailor.SkillLevel { return q.skillLevel }

// GetTailorsQueryResponse is one tailor row in the read model.
type GetTailorsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	SkillLevel        tailor.SkillLevel
	QCPassRate        float64
	MaxConcurrentJobs int
	CurrentJobCount   int
	Zone              string
	IsActive          bool
}
