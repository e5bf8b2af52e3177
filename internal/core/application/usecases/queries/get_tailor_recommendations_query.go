package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/guard"
)

var ErrGetTailorRecommendationsQueryIsNotConstructed = errors.New(
	"GetTailorRecommendationsQuery must be created via NewGetTailorRecommendationsQuery constructor",
)

// GetTailorRecommendationsQuery previews the ranked tailor pool without
// committing anything: the same scoring the assignment engine uses, exposed
// as a read model so operators can see who would be picked and why.
type GetTailorRecommendationsQuery struct { //nolint:recvcheck //using for validation
	zone string

	guard guard.ConstructorGuard
}

// NewGetTailorRecommendationsQuery creates a recommendations query.
// Zone optionally restricts the pool; empty means any zone.
func NewGetTailorRecommendationsQuery(zone string) GetTailorRecommendationsQuery {
	return GetTailorRecommendationsQuery{
		zone:  zone,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTailorRecommendationsQueryIsNotConstructed if validation fails.
func (q GetTailorRecommendationsQuery) Validate() error {
	return q.guard.Validate(ErrGetTailorRecommendationsQueryIsNotConstructed)
}

// Zone returns the optional workshop zone restriction.
func (q GetTailorRecommendationsQuery) Zone() string {
	return q.zone
}

// TailorRecommendation is one ranked candidate with its score breakdown.
type TailorRecommendation struct {
	TailorID          kernel.UUID
	Name              string
	SkillLevel        tailor.SkillLevel
	QCPassRate        float64
	CurrentJobCount   int
	MaxConcurrentJobs int
	Total             float64
	QCFactor          float64
	LoadFactor        float64
	SkillFactor       float64
}
