package queries

import (
	"errors"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves account records, optionally filtered by role.
type ListUsersQuery struct {
	role string

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates an account listing query. An empty role
// matches everything.
func NewListUsersQuery(role string) ListUsersQuery {
	return ListUsersQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Role returns the role filter, possibly empty.
func (q ListUsersQuery) Role() string {
	return q.role
}

// UserResponse is the account read model.
type UserResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Role        string
	CreatedAt   time.Time
	LastLoginAt time.Time
}
