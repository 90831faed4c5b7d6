package queries

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler retrieves parcel listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listing queries.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the query and returns matching parcels ordered by
// creation date, newest first.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

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
		WHERE (? = '' OR sender_email = ?)
		  AND (? = '' OR payment_status = ?)
		  AND (? = '' OR delivery_status = ?)
		ORDER BY creation_date DESC
	`,
		query.SenderEmail(), query.SenderEmail(),
		query.PaymentStatus(), query.PaymentStatus(),
		query.DeliveryStatus(), query.DeliveryStatus(),
	).Rows()
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
