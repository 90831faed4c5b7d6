package queries

import (
	"context"
	"database/sql"

	"parcelpilot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRidersQueryHandler retrieves rider listings.
type ListRidersQueryHandler struct {
	db *gorm.DB
}

// NewListRidersQueryHandler creates a handler for rider listing queries.
func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

// Handle executes the query and returns riders sorted by name.
func (h ListRidersQueryHandler) Handle(
	ctx context.Context,
	query ListRidersQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]RiderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			district,
			status,
			work_status,
			earnings
		FROM riders
		WHERE (? = '' OR status = ?)
		ORDER BY name
	`, query.Status(), query.Status()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r RiderResponse
		var id uuid.UUID
		var district sql.NullString

		err = rows.Scan(
			&id,
			&r.Name,
			&r.Email,
			&district,
			&r.Status,
			&r.WorkStatus,
			&r.Earnings,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.ID = riderID
		r.District = district.String
		riders = append(riders, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
