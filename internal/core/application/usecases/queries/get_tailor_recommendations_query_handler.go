package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetTailorRecommendationsQueryHandler ranks the available tailor pool.
// Reads candidate rows directly, rebuilds lightweight aggregates, and runs
// them through the domain scorer so the preview and the assignment engine
// can never disagree.
type GetTailorRecommendationsQueryHandler struct {
	db       *gorm.DB
	selector services.TailorSelector
}

// NewGetTailorRecommendationsQueryHandler creates a handler for recommendation queries.
// Requires a GORM database connection for query execution.
func NewGetTailorRecommendationsQueryHandler(db *gorm.DB) GetTailorRecommendationsQueryHandler {
	return GetTailorRecommendationsQueryHandler{
		db:       db,
		selector: services.NewTailorSelector(),
	}
}

// Handle executes the recommendations query.
// Returns the available pool in ranked order with per-factor score breakdowns.
// An empty pool yields an empty slice, not an error.
func (h GetTailorRecommendationsQueryHandler) Handle(
	ctx context.Context,
	query GetTailorRecommendationsQuery,
) ([]TailorRecommendation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			skill_level,
			qc_pass_rate,
			max_concurrent_jobs,
			current_job_count,
			zone
		FROM tailors
		WHERE is_active AND current_job_count < max_concurrent_jobs
	`
	args := make([]any, 0, 1)
	if query.Zone() != "" {
		sql += ` AND zone = ?`
		args = append(args, query.Zone())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*tailor.Tailor, 0)
	for rows.Next() {
		var (
			id         string
			name       string
			skillLevel string
			passRate   float64
			maxJobs    int
			curJobs    int
			zone       string
		)

		if err = rows.Scan(&id, &name, &skillLevel, &passRate, &maxJobs, &curJobs, &zone); err != nil {
			return nil, err
		}

		tailorID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}

		candidate, restoreErr := tailor.RestoreTailor(
			tailorID, name, tailor.SkillLevel(skillLevel), passRate, maxJobs, curJobs, zone, true)
		if restoreErr != nil {
			return nil, restoreErr
		}
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ranked, err := h.selector.Rank(candidates)
	if err != nil {
		return nil, err
	}

	recommendations := make([]TailorRecommendation, 0, len(ranked))
	for _, r := range ranked {
		recommendations = append(recommendations, TailorRecommendation{
			TailorID:          r.Tailor.ID(),
			Name:              r.Tailor.Name(),
			SkillLevel:        r.Tailor.SkillLevel(),
			QCPassRate:        r.Tailor.QCPassRate(),
			CurrentJobCount:   r.Tailor.CurrentJobCount(),
			MaxConcurrentJobs: r.Tailor.MaxConcurrentJobs(),
			Total:             r.Score.Total,
			QCFactor:          r.Score.QCFactor,
			LoadFactor:        r.Score.LoadFactor,
			SkillFactor:       r.Score.SkillFactor,
		})
	}

	return recommendations, nil
}
