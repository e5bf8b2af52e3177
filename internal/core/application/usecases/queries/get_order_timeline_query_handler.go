package queries

import (
	"context"
	"database/sql"
	"time"

	"atelier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler retrieves the append-only state history of an
// order directly from storage.
type GetOrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{db: db}
}

// Handle executes the timeline query.
// Returns the order's records in chronological order; an order with no
// history yields an empty slice.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) ([]TimelineEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_state,
			to_state,
			actor,
			note,
			occurred_at
		FROM order_state_transitions
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]TimelineEntry, 0)
	for rows.Next() {
		var (
			fromState  sql.NullString
			toState    string
			actor      string
			note       string
			occurredAt time.Time
		)

		if err = rows.Scan(&fromState, &toState, &actor, &note, &occurredAt); err != nil {
			return nil, err
		}

		entry := TimelineEntry{
			ToState:    order.State(toState),
			ToLabel:    order.State(toState).Label(),
			Actor:      actor,
			Note:       note,
			OccurredAt: occurredAt,
		}
		if fromState.Valid {
			from := order.State(fromState.String)
			entry.FromState = &from
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
