package queries

import (
	"errors"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a single account by email. The transport layer
// uses it for the per-request role lookup.
type GetUserQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates an account lookup query.
func NewGetUserQuery(email string) (GetUserQuery, error) {
	if email == "" {
		return GetUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetUserQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// Email returns the email being looked up.
func (q GetUserQuery) Email() string {
	return q.email
}
