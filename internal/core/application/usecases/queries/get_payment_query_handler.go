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

// GetPaymentQueryHandler retrieves single payment receipts.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for receipt lookup queries.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// receipt carries the requested id.
func (h GetPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQuery,
) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	var p PaymentResponse
	var id, parcelID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.PaymentID().Bytes()).Row()

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return PaymentResponse{}, errs.NewObjectNotFoundError("payment", query.PaymentID().String())
	}
	if err != nil {
		return PaymentResponse{}, err
	}

	paymentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PaymentResponse{}, err
	}
	parcelUUID, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return PaymentResponse{}, err
	}
	p.ID = paymentID
	p.ParcelID = parcelUUID

	return p, nil
}
