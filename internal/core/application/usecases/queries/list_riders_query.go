package queries

import (
	"errors"

	"parcelpilot/internal/pkg/guard"
)

var ErrListRidersQueryIsNotConstructed = errors.New(
	"ListRidersQuery must be created via NewListRidersQuery constructor",
)

// ListRidersQuery retrieves rider records, optionally filtered by approval
// status. An empty status matches everything.
type ListRidersQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewListRidersQuery creates a rider listing query.
func NewListRidersQuery(status string) ListRidersQuery {
	return ListRidersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

// Status returns the approval status filter, possibly empty.
func (q ListRidersQuery) Status() string {
	return q.status
}
