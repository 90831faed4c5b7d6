package ports

import (
	"context"

	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account. Fails on a duplicate email; callers that
	// treat duplicates as success resolve the existing account first.
	Add(ctx context.Context, user *account.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, user *account.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves an account by its unique email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
