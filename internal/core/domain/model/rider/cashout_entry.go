package rider

import (
	"fmt"
	"time"

	"parcelpilot/internal/pkg/errs"
)

// CashoutEntry records one withdrawal from the rider's balance.
// Entries are append-only.
type CashoutEntry struct {
	amount    float64
	timestamp time.Time
}

// NewCashoutEntry creates a withdrawal record. The amount must be positive;
// partial or empty cashouts are not representable.
func NewCashoutEntry(amount float64, timestamp time.Time) (CashoutEntry, error) {
	if amount <= 0 {
		return CashoutEntry{}, errs.NewValueIsInvalidErrorWithCause(
			"cashout amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	if timestamp.IsZero() {
		return CashoutEntry{}, errs.NewValueIsRequiredError("cashout timestamp")
	}

	return CashoutEntry{amount: amount, timestamp: timestamp}, nil
}

// Amount returns the withdrawn amount.
func (e CashoutEntry) Amount() float64 {
	return e.amount
}

// Timestamp returns when the withdrawal happened.
func (e CashoutEntry) Timestamp() time.Time {
	return e.timestamp
}
