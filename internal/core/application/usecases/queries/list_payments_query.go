package queries

import (
	"errors"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery retrieves payment receipts, optionally filtered by
// payer email. An empty filter matches everything.
type ListPaymentsQuery struct {
	payerEmail string

	guard guard.ConstructorGuard
}

// NewListPaymentsQuery creates a payment listing query.
func NewListPaymentsQuery(payerEmail string) ListPaymentsQuery {
	return ListPaymentsQuery{
		payerEmail: payerEmail,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// PayerEmail returns the payer filter, possibly empty.
func (q ListPaymentsQuery) PayerEmail() string {
	return q.payerEmail
}

// PaymentResponse is the immutable receipt read model.
type PaymentResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	TrackingID    string
	Amount        float64
	Currency      string
	PayerEmail    string
	TransactionID string
	Method        string
	PaidAt        time.Time
}
