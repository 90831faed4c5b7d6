package queries

import (
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrGetRiderQueryIsNotConstructed = errors.New(
	"GetRiderQuery must be created via NewGetRiderQuery constructor",
)

// GetRiderQuery retrieves a single rider profile by email.
type GetRiderQuery struct {
	riderEmail string

	guard guard.ConstructorGuard
}

// NewGetRiderQuery creates a rider profile query.
func NewGetRiderQuery(riderEmail string) (GetRiderQuery, error) {
	if riderEmail == "" {
		return GetRiderQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}
	return GetRiderQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderQueryIsNotConstructed)
}

// RiderEmail returns the email being looked up.
func (q GetRiderQuery) RiderEmail() string {
	return q.riderEmail
}

// RiderResponse is the rider profile read model.
type RiderResponse struct {
	ID         kernel.UUID
	Name       string
	Email      string
	District   string
	Status     string
	WorkStatus string
	Earnings   float64
}
