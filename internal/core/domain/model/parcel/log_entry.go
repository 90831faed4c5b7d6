package parcel

import (
	"sort"
	"time"

	"parcelpilot/internal/pkg/errs"
)

// LogEntry is one record of the parcel's embedded audit trail. Entries are
// appended by lifecycle transitions, never edited or removed.
type LogEntry struct {
	status    string
	note      string
	timestamp time.Time
}

// NewLogEntry creates an audit record for a lifecycle transition.
// Status is the parcel status text at the time of the event; note carries the
// human-readable detail ("rider assigned", "picked up by ...").
func NewLogEntry(status, note string, timestamp time.Time) (LogEntry, error) {
	if status == "" {
		return LogEntry{}, errs.NewValueIsRequiredError("log status")
	}
	if timestamp.IsZero() {
		return LogEntry{}, errs.NewValueIsRequiredError("log timestamp")
	}

	return LogEntry{
		status:    status,
		note:      note,
		timestamp: timestamp,
	}, nil
}

// Status returns the parcel status text recorded with this entry.
func (e LogEntry) Status() string {
	return e.status
}

// Note returns the free-form detail recorded with this entry.
func (e LogEntry) Note() string {
	return e.note
}

// Timestamp returns when the entry was recorded.
func (e LogEntry) Timestamp() time.Time {
	return e.timestamp
}

// sortLogEntries orders entries ascending by timestamp. Storage order is not
// trusted; readers always see a chronological trail.
func sortLogEntries(entries []LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].timestamp.Before(entries[j].timestamp)
	})
}
