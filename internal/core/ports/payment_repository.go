package ports

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment receipts.
// Receipts are insert-only: there is no update or delete.
type PaymentRepository interface {
	// Add persists a new payment receipt.
	Add(ctx context.Context, payment *payment.Payment) error

	// Get retrieves a payment receipt by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
}
