// Package ports defines the persistence and external-collaborator contracts
// of the core. Adapters implement these interfaces; handlers depend on them,
// which keeps the domain free of storage and transport concerns.
package ports

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// The embedded audit trail is stored with the parcel: a status change and its
// log append always land in the same write.
type ParcelRepository interface {
	// Add persists a new parcel with its initial log entry.
	Add(ctx context.Context, parcel *parcel.Parcel) error

	// Update persists changes to an existing parcel, including appended log
	// entries. Returns a not-found error if the parcel no longer exists.
	Update(ctx context.Context, parcel *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves a parcel by its public tracking id.
	GetByTrackingID(ctx context.Context, trackingID string) (*parcel.Parcel, error)

	// Delete removes a parcel. Returns a not-found error if it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
