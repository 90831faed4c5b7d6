package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRiderQueryHandler retrieves rider profiles.
type GetRiderQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderQueryHandler creates a handler for rider profile queries.
func NewGetRiderQueryHandler(db *gorm.DB) GetRiderQueryHandler {
	return GetRiderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// rider record carries the requested email.
func (h GetRiderQueryHandler) Handle(
	ctx context.Context,
	query GetRiderQuery,
) (RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return RiderResponse{}, err
	}

	var r RiderResponse
	var id uuid.UUID
	var district sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			district,
			status,
			work_status,
			earnings
		FROM riders
		WHERE email = ?
	`, query.RiderEmail()).Row()

	err := row.Scan(
		&id,
		&r.Name,
		&r.Email,
		&district,
		&r.Status,
		&r.WorkStatus,
		&r.Earnings,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RiderResponse{}, errs.NewObjectNotFoundError("riderEmail", query.RiderEmail())
	}
	if err != nil {
		return RiderResponse{}, err
	}

	riderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RiderResponse{}, err
	}
	r.ID = riderID
	r.District = district.String

	return r, nil
}
