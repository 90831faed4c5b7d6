package queries

import (
	"errors"
	"time"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrTrackingHistoryQueryIsNotConstructed = errors.New(
	"TrackingHistoryQuery must be created via NewTrackingHistoryQuery constructor",
)

// TrackingHistoryQuery retrieves the public tracking trail of a parcel by
// tracking identifier. The trail is readable without authentication.
type TrackingHistoryQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewTrackingHistoryQuery creates a tracking trail query.
func NewTrackingHistoryQuery(trackingID string) (TrackingHistoryQuery, error) {
	if trackingID == "" {
		return TrackingHistoryQuery{}, errs.NewValueIsRequiredError("trackingID")
	}
	return TrackingHistoryQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrTrackingHistoryQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier being looked up.
func (q TrackingHistoryQuery) TrackingID() string {
	return q.trackingID
}

// TrackingEntryResponse is one step of a parcel's public tracking trail.
type TrackingEntryResponse struct {
	TrackingID string
	Status     string
	Location   string
	UpdatedBy  string
	Timestamp  time.Time
}
