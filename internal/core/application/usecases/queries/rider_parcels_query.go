package queries

import (
	"errors"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrRiderParcelsQueryIsNotConstructed = errors.New(
	"RiderParcelsQuery must be created via NewRiderParcelsQuery constructor",
)

var ErrUnknownWorklist = errors.New("worklist must be either pending or completed")

// Worklist selects which slice of a rider's assignments to return.
type Worklist string

const (
	// PendingWorklist covers parcels assigned to the rider that are not
	// delivered yet.
	PendingWorklist Worklist = "pending"
	// CompletedWorklist covers parcels the rider has delivered.
	CompletedWorklist Worklist = "completed"
)

// RiderParcelsQuery retrieves the parcels currently or previously assigned
// to a rider, split into pending and completed worklists.
type RiderParcelsQuery struct {
	riderEmail string
	worklist   Worklist

	guard guard.ConstructorGuard
}

// NewRiderParcelsQuery creates a rider worklist query.
func NewRiderParcelsQuery(riderEmail string, worklist Worklist) (RiderParcelsQuery, error) {
	if riderEmail == "" {
		return RiderParcelsQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}
	if worklist != PendingWorklist && worklist != CompletedWorklist {
		return RiderParcelsQuery{}, ErrUnknownWorklist
	}
	return RiderParcelsQuery{
		riderEmail: riderEmail,
		worklist:   worklist,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrRiderParcelsQueryIsNotConstructed)
}

// RiderEmail returns the rider whose worklist is requested.
func (q RiderParcelsQuery) RiderEmail() string {
	return q.riderEmail
}

// Worklist returns the requested worklist kind.
func (q RiderParcelsQuery) Worklist() Worklist {
	return q.worklist
}
