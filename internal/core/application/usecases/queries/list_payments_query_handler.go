package queries

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPaymentsQueryHandler retrieves payment receipt listings.
type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewListPaymentsQueryHandler creates a handler for payment listing queries.
func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle executes the query and returns receipts sorted by payment time,
// newest first.
func (h ListPaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			tracking_id,
			amount,
			currency,
			payer_email,
			transaction_id,
			method,
			paid_at
		FROM payments
		WHERE (? = '' OR payer_email = ?)
		ORDER BY paid_at DESC
	`, query.PayerEmail(), query.PayerEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PaymentResponse
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&p.TrackingID,
			&p.Amount,
			&p.Currency,
			&p.PayerEmail,
			&p.TransactionID,
			&p.Method,
			&p.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelUUID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = paymentID
		p.ParcelID = parcelUUID
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
