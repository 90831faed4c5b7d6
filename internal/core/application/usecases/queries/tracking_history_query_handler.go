package queries

import (
	"context"

	"gorm.io/gorm"
)

// TrackingHistoryQueryHandler retrieves parcel tracking trails.
type TrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewTrackingHistoryQueryHandler creates a handler for tracking trail queries.
func NewTrackingHistoryQueryHandler(db *gorm.DB) TrackingHistoryQueryHandler {
	return TrackingHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back oldest first. An unknown
// tracking ID yields an empty trail, not an error.
func (h TrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query TrackingHistoryQuery,
) ([]TrackingEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]TrackingEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			status,
			location,
			updated_by,
			timestamp
		FROM trackings
		WHERE tracking_id = ?
		ORDER BY timestamp ASC, id ASC
	`, query.TrackingID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e TrackingEntryResponse

		err = rows.Scan(
			&e.TrackingID,
			&e.Status,
			&e.Location,
			&e.UpdatedBy,
			&e.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
