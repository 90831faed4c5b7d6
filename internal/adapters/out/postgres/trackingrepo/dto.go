// Package trackingrepo provides persistence for the public tracking trail.
// The trail is append-only; entries have no domain identity, so the table
// carries its own serial key.
package trackingrepo

import (
	"time"

	"parcelpilot/internal/core/domain/model/tracking"
)

// TrackingEntryDTO represents one row of the public tracking trail.
type TrackingEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	TrackingID string    `gorm:"type:varchar(64);not null;index"`
	Status     string    `gorm:"type:varchar(64);not null"`
	Location   string    `gorm:"type:varchar(255);not null"`
	UpdatedBy  string    `gorm:"type:varchar(255);not null"`
	Timestamp  time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "trackings".
func (TrackingEntryDTO) TableName() string {
	return "trackings"
}

// fromDomain converts a tracking entry to its database representation.
func fromDomain(entry tracking.Entry) TrackingEntryDTO {
	return TrackingEntryDTO{
		TrackingID: entry.TrackingID(),
		Status:     entry.Status(),
		Location:   entry.Location(),
		UpdatedBy:  entry.UpdatedBy(),
		Timestamp:  entry.Timestamp(),
	}
}
