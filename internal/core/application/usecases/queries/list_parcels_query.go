// Package queries contains the read operations of the service. Handlers go
// straight to the database with raw SQL and return flat read models; nothing
// here mutates state.
package queries

import (
	"errors"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery retrieves parcels filtered by sender email, payment
// status and/or delivery status. Empty filter fields match everything.
// Results are ordered by creation date descending.
type ListParcelsQuery struct {
	senderEmail    string
	paymentStatus  string
	deliveryStatus string

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a parcel listing query. All filters are
// optional; an empty string disables the corresponding filter.
func NewListParcelsQuery(senderEmail, paymentStatus, deliveryStatus string) ListParcelsQuery {
	return ListParcelsQuery{
		senderEmail:    senderEmail,
		paymentStatus:  paymentStatus,
		deliveryStatus: deliveryStatus,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// SenderEmail returns the sender filter, possibly empty.
func (q ListParcelsQuery) SenderEmail() string {
	return q.senderEmail
}

// PaymentStatus returns the payment status filter, possibly empty.
func (q ListParcelsQuery) PaymentStatus() string {
	return q.paymentStatus
}

// DeliveryStatus returns the delivery status filter, possibly empty.
func (q ListParcelsQuery) DeliveryStatus() string {
	return q.deliveryStatus
}

// ParcelSummaryResponse is the flat read model of one parcel in a listing.
type ParcelSummaryResponse struct {
	ID               kernel.UUID
	TrackingID       string
	SenderName       string
	SenderEmail      string
	SenderDistrict   string
	ReceiverName     string
	ReceiverDistrict string
	Cost             float64
	DeliveryStatus   string
	PaymentStatus    string
	RiderName        string
	CreationDate     time.Time
}
