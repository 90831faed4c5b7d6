package ports

import (
	"context"

	"parcelpilot/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the public tracking
// trail. The trail is append-only; history reads live on the query side.
type TrackingRepository interface {
	// Append adds a ping to the trail.
	Append(ctx context.Context, entry tracking.Entry) error
}
