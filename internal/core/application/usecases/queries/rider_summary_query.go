package queries

import (
	"errors"
	"time"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrRiderSummaryQueryIsNotConstructed = errors.New(
	"RiderSummaryQuery must be created via NewRiderSummaryQuery constructor",
)

// RiderSummaryQuery retrieves a rider's earnings ledger summary by email.
// All monetary figures default to zero when the rider has never accrued.
type RiderSummaryQuery struct {
	riderEmail string

	guard guard.ConstructorGuard
}

// NewRiderSummaryQuery creates an earnings summary query.
func NewRiderSummaryQuery(riderEmail string) (RiderSummaryQuery, error) {
	if riderEmail == "" {
		return RiderSummaryQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}
	return RiderSummaryQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RiderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrRiderSummaryQueryIsNotConstructed)
}

// RiderEmail returns the rider whose ledger is requested.
func (q RiderSummaryQuery) RiderEmail() string {
	return q.riderEmail
}

// CashoutResponse is one withdrawal in a rider's cashout history.
type CashoutResponse struct {
	Amount    float64
	Timestamp time.Time
}

// RiderSummaryResponse is the earnings ledger read model. CurrentBalance
// always equals TotalEarned minus TotalCashout.
type RiderSummaryResponse struct {
	RiderEmail     string
	TotalEarned    float64
	TotalCashout   float64
	CurrentBalance float64
	Cashouts       []CashoutResponse
}
