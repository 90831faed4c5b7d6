package queries

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiderParcelsQueryHandler retrieves rider worklists from the database.
type RiderParcelsQueryHandler struct {
	db *gorm.DB
}

// NewRiderParcelsQueryHandler creates a handler for rider worklist queries.
func NewRiderParcelsQueryHandler(db *gorm.DB) RiderParcelsQueryHandler {
	return RiderParcelsQueryHandler{db: db}
}

// Handle executes the query. The pending worklist contains parcels assigned
// to the rider that have not reached the delivered state; the completed
// worklist contains the delivered ones. Both are ordered by creation date
// descending.
func (h RiderParcelsQueryHandler) Handle(
	ctx context.Context,
	query RiderParcelsQuery,
) ([]ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	delivered := query.Worklist() == CompletedWorklist

	parcels := make([]ParcelSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			sender_name,
			sender_email,
			sender_district,
			receiver_name,
			receiver_district,
			cost,
			delivery_status,
			payment_status,
			COALESCE(rider_name, ''),
			creation_date
		FROM parcels
		WHERE rider_email = ?
		  AND (delivery_status = ?) = ?
		ORDER BY creation_date DESC
	`, query.RiderEmail(), parcel.Delivered.String(), delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p ParcelSummaryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&p.TrackingID,
			&p.SenderName,
			&p.SenderEmail,
			&p.SenderDistrict,
			&p.ReceiverName,
			&p.ReceiverDistrict,
			&p.Cost,
			&p.DeliveryStatus,
			&p.PaymentStatus,
			&p.RiderName,
			&p.CreationDate,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = parcelID
		parcels = append(parcels, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
