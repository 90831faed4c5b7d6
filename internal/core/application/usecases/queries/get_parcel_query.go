package queries

import (
	"errors"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves the full detail of a single parcel, including
// its status log trail, by tracking identifier.
type GetParcelQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a parcel detail query for the given tracking ID.
func NewGetParcelQuery(trackingID string) (GetParcelQuery, error) {
	if trackingID == "" {
		return GetParcelQuery{}, errs.NewValueIsRequiredError("trackingID")
	}
	return GetParcelQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier being looked up.
func (q GetParcelQuery) TrackingID() string {
	return q.trackingID
}

// ParcelLogResponse is one status log entry in a parcel detail read model.
type ParcelLogResponse struct {
	Status    string
	Note      string
	Timestamp time.Time
}

// ParcelDetailResponse is the full read model of a single parcel.
type ParcelDetailResponse struct {
	ID               kernel.UUID
	TrackingID       string
	SenderName       string
	SenderEmail      string
	SenderDistrict   string
	ReceiverName     string
	ReceiverAddress  string
	ReceiverDistrict string
	Cost             float64
	DeliveryStatus   string
	PaymentStatus    string
	RiderName        string
	RiderEmail       string
	CreationDate     time.Time
	Logs             []ParcelLogResponse
}
