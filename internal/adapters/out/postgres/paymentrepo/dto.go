// Package paymentrepo provides data transfer objects and mapping functions
// for payment receipt persistence. Receipts are insert-only.
package paymentrepo

import (
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// receipts.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingID    string    `gorm:"type:varchar(64);not null;index"`
	Amount        float64   `gorm:"type:numeric;not null"`
	Currency      string    `gorm:"type:varchar(8);not null"`
	PayerEmail    string    `gorm:"type:varchar(255);not null;index"`
	TransactionID string    `gorm:"type:varchar(255);not null"`
	Method        string    `gorm:"type:varchar(64);not null"`
	PaidAt        time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment receipt to its database representation.
func fromDomain(receipt *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            receipt.ID().Bytes(),
		ParcelID:      receipt.ParcelID().Bytes(),
		TrackingID:    receipt.TrackingID(),
		Amount:        receipt.Amount(),
		Currency:      receipt.Currency(),
		PayerEmail:    receipt.PayerEmail(),
		TransactionID: receipt.TransactionID(),
		Method:        receipt.Method(),
		PaidAt:        receipt.PaidAt(),
	}
}

// toDomain converts a database DTO back to a payment receipt.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		parcelID,
		dto.TrackingID,
		dto.Amount,
		dto.Currency,
		dto.PayerEmail,
		dto.TransactionID,
		dto.Method,
		dto.PaidAt,
	)
}
