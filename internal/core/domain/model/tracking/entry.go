// Package tracking contains the public tracking trail: an independent,
// append-only stream of location/status pings keyed by tracking id. It is
// coarser-grained than the parcel's internal audit log and the two trails are
// allowed to diverge.
package tracking

import (
	"time"

	"parcelpilot/internal/pkg/errs"
)

// Entry is one ping on the public tracking trail. Entries carry no identity
// of their own; the trail is append-only and read back ordered by timestamp.
type Entry struct {
	trackingID string
	status     string
	location   string
	updatedBy  string
	timestamp  time.Time
}

// NewEntry creates a tracking ping timestamped at call time by the caller.
func NewEntry(trackingID, status, location, updatedBy string, timestamp time.Time) (Entry, error) {
	if trackingID == "" {
		return Entry{}, errs.NewValueIsRequiredError("tracking id")
	}
	if status == "" {
		return Entry{}, errs.NewValueIsRequiredError("tracking status")
	}
	if timestamp.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("tracking timestamp")
	}

	return Entry{
		trackingID: trackingID,
		status:     status,
		location:   location,
		updatedBy:  updatedBy,
		timestamp:  timestamp,
	}, nil
}

// TrackingID returns the public tracking identifier.
func (e Entry) TrackingID() string {
	return e.trackingID
}

// Status returns the reported status text.
func (e Entry) Status() string {
	return e.status
}

// Location returns the reported location, possibly empty.
func (e Entry) Location() string {
	return e.location
}

// UpdatedBy returns the identity of the caller who appended the ping.
func (e Entry) UpdatedBy() string {
	return e.updatedBy
}

// Timestamp returns when the ping was recorded.
func (e Entry) Timestamp() time.Time {
	return e.timestamp
}
