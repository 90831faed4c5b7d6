package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel with its log trail.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail queries.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// parcel carries the requested tracking ID. Log entries are returned in
// ascending timestamp order regardless of how they were stored.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ParcelDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelDetailResponse{}, err
	}

	var p ParcelDetailResponse
	var id uuid.UUID
	var riderName, riderEmail sql.NullString
	var logsDoc []byte

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			sender_name,
			sender_email,
			sender_district,
			receiver_name,
			receiver_address,
			receiver_district,
			cost,
			delivery_status,
			payment_status,
			rider_name,
			rider_email,
			creation_date,
			logs
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID()).Row()

	err := row.Scan(
		&id,
		&p.TrackingID,
		&p.SenderName,
		&p.SenderEmail,
		&p.SenderDistrict,
		&p.ReceiverName,
		&p.ReceiverAddress,
		&p.ReceiverDistrict,
		&p.Cost,
		&p.DeliveryStatus,
		&p.PaymentStatus,
		&riderName,
		&riderEmail,
		&p.CreationDate,
		&logsDoc,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ParcelDetailResponse{}, errs.NewObjectNotFoundError("trackingID", query.TrackingID())
	}
	if err != nil {
		return ParcelDetailResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelDetailResponse{}, err
	}
	p.ID = parcelID
	p.RiderName = riderName.String
	p.RiderEmail = riderEmail.String

	if len(logsDoc) > 0 {
		if err = json.Unmarshal(logsDoc, &p.Logs); err != nil {
			return ParcelDetailResponse{}, err
		}
	}
	sort.SliceStable(p.Logs, func(i, j int) bool {
		return p.Logs[i].Timestamp.Before(p.Logs[j].Timestamp)
	})

	return p, nil
}
