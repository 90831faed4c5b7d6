package queries

import (
	"errors"

	"parcelpilot/internal/pkg/guard"
)

var ErrOverviewQueryIsNotConstructed = errors.New(
	"OverviewQuery must be created via NewOverviewQuery constructor",
)

// OverviewQuery retrieves the dashboard rollup: parcel and account counts
// computed in a single pass over the stores.
type OverviewQuery struct {
	guard guard.ConstructorGuard
}

// NewOverviewQuery creates a dashboard rollup query.
func NewOverviewQuery() OverviewQuery {
	return OverviewQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q OverviewQuery) Validate() error {
	return q.guard.Validate(ErrOverviewQueryIsNotConstructed)
}

// OverviewResponse is the dashboard read model. Counts are plain numbers
// and default to zero; they are never absent.
type OverviewResponse struct {
	TotalParcels     int64 `json:"totalParcels"`
	DeliveredParcels int64 `json:"deliveredParcels"`
	TotalUsers       int64 `json:"totalUsers"`
	TotalRiders      int64 `json:"totalRiders"`
	PendingRiders    int64 `json:"pendingRiders"`
}
