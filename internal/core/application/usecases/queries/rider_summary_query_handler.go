package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"

	"gorm.io/gorm"
)

// RiderSummaryQueryHandler retrieves earnings ledger summaries.
type RiderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewRiderSummaryQueryHandler creates a handler for earnings summary queries.
func NewRiderSummaryQueryHandler(db *gorm.DB) RiderSummaryQueryHandler {
	return RiderSummaryQueryHandler{db: db}
}

// Handle executes the query. A rider without a ledger record gets an
// all-zero summary rather than an error, so the endpoint is safe to call
// before the first accrual.
func (h RiderSummaryQueryHandler) Handle(
	ctx context.Context,
	query RiderSummaryQuery,
) (RiderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return RiderSummaryResponse{}, err
	}

	summary := RiderSummaryResponse{
		RiderEmail: query.RiderEmail(),
		Cashouts:   make([]CashoutResponse, 0),
	}

	var cashoutsDoc []byte

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			total_earned,
			total_cashout,
			earnings,
			cashouts
		FROM riders
		WHERE email = ?
	`, query.RiderEmail()).Row()

	err := row.Scan(
		&summary.TotalEarned,
		&summary.TotalCashout,
		&summary.CurrentBalance,
		&cashoutsDoc,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return summary, nil
	}
	if err != nil {
		return RiderSummaryResponse{}, err
	}

	if len(cashoutsDoc) > 0 {
		if err = json.Unmarshal(cashoutsDoc, &summary.Cashouts); err != nil {
			return RiderSummaryResponse{}, err
		}
	}
	sort.SliceStable(summary.Cashouts, func(i, j int) bool {
		return summary.Cashouts[i].Timestamp.Before(summary.Cashouts[j].Timestamp)
	})

	return summary, nil
}
