package ports

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
// Riders are keyed both by id and by their unique email, the ledger identity.
type RiderRepository interface {
	// Add persists a new rider.
	Add(ctx context.Context, rider *rider.Rider) error

	// Update persists changes to an existing rider, including the ledger
	// fields and cashout history. Returns a not-found error if the rider
	// no longer exists.
	Update(ctx context.Context, rider *rider.Rider) error

	// Get retrieves a rider by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByEmail retrieves a rider by its unique email.
	GetByEmail(ctx context.Context, email string) (*rider.Rider, error)

	// GetOrCreateByEmail retrieves the rider with the given email, creating a
	// minimal ledger rider if none exists. This is the explicit get-or-create
	// boundary used by the delivery-completion transition: earnings can accrue
	// to an email nobody registered.
	GetOrCreateByEmail(ctx context.Context, email string) (*rider.Rider, error)
}
