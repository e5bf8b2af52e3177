package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"

	"gorm.io/gorm"
)

// GetTailorsQueryHandler lists tailors from the database.
type GetTailorsQueryHandler struct {
	db *gorm.DB
}

// NewGetTailorsQueryHandler creates a handler for tailor listing queries.
func NewGetTailorsQueryHandler(db *gorm.DB) GetTailorsQueryHandler {
	return GetTailorsQueryHandler{db: db}
}

// Handle executes the listing query, sorted by name for stable output.
func (h GetTailorsQueryHandler) Handle(
	ctx context.Context,
	query GetTailorsQuery,
) ([]GetTailorsQueryResponse, error) {
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
			zone,
			is_active
		FROM tailors
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.AvailableOnly() {
		sql += ` AND is_active AND current_job_count < max_concurrent_jobs`
	}
	if query.Zone() != "" {
		sql += ` AND zone = ?`
		args = append(args, query.Zone())
	}
	if query.SkillLevel() != "" {
		sql += ` AND skill_level = ?`
		args = append(args, string(query.SkillLevel()))
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tailors := make([]GetTailorsQueryResponse, 0)
	for rows.Next() {
		var resp GetTailorsQueryResponse
		var id, skillLevel string

		err = rows.Scan(
			&id,
			&resp.Name,
			&skillLevel,
			&resp.QCPassRate,
			&resp.MaxConcurrentJobs,
			&resp.CurrentJobCount,
			&resp.Zone,
			&resp.IsActive,
		)
		if err != nil {
			return nil, err
		}

		tailorID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = tailorID
		resp.SkillLevel = tailor.SkillLevel(skillLevel)
		tailors = append(tailors, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tailors, nil
}
