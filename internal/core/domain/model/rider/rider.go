package rider

import (
	"errors"
	"fmt"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not created
	// through NewRider, NewLedgerRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

	// ErrNothingToCashout is returned when a cashout is requested on an empty
	// balance. No partial cashout exists, so a zero balance has nothing to move.
	ErrNothingToCashout = errors.New("rider has no earnings to cash out")

	// ErrLedgerIdentityBroken is returned when restored ledger fields violate
	// total_earned - total_cashout == earnings.
	ErrLedgerIdentityBroken = errors.New("rider ledger identity is broken")
)

// Rider is the aggregate root of the rider ledger. It combines the rider's
// application status, current work status, and the earnings ledger.
//
// Ledger identity, held before and after every accrual and cashout:
//
//	totalEarned - totalCashout == earnings
//
// totalEarned and totalCashout are monotonic non-decreasing; earnings is the
// current withdrawable balance and never goes negative.
//
// Identity is the rider's email: a rider who never applied can still
// accumulate earnings under their email via NewLedgerRider (the get-or-create
// path used by the delivery-completion transition).
type Rider struct {
	id    kernel.UUID
	name  string
	email string

	// district is nil for riders materialized purely by earnings accrual.
	district *kernel.District

	status     ApprovalStatus
	workStatus WorkStatus

	earnings     float64
	totalEarned  float64
	totalCashout float64
	cashouts     []CashoutEntry

	isConstructed bool
}

// NewRider creates a rider application: status pending, work status free,
// empty ledger.
func NewRider(id kernel.UUID, name, email string, district kernel.District) (*Rider, error) {
	r := &Rider{
		status:        Pending,
		workStatus:    Free,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
	); err != nil {
		return nil, err
	}

	if err := district.Validate(); err != nil {
		return nil, err
	}
	r.district = &district

	return r, nil
}

// NewLedgerRider creates the minimal rider record used when earnings accrue
// to an email nobody registered: accepted (they are demonstrably working),
// free, no district, empty ledger.
func NewLedgerRider(id kernel.UUID, email string) (*Rider, error) {
	r := &Rider{
		status:        Accepted,
		workStatus:    Free,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setEmail(email),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider from persistence and re-checks the
// ledger identity.
func RestoreRider(
	id kernel.UUID,
	name, email string,
	district *kernel.District,
	status ApprovalStatus,
	workStatus WorkStatus,
	earnings, totalEarned, totalCashout float64,
	cashouts []CashoutEntry,
) (*Rider, error) {
	r := &Rider{
		district:      district,
		status:        status,
		workStatus:    workStatus,
		earnings:      earnings,
		totalEarned:   totalEarned,
		totalCashout:  totalCashout,
		cashouts:      cashouts,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setEmail(email),
		status.Validate(),
		workStatus.Validate(),
	); err != nil {
		return nil, err
	}
	r.name = name

	if totalEarned-totalCashout != earnings {
		return nil, ErrLedgerIdentityBroken
	}

	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// IsEqual compares two riders by identity.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the rider's unique email, the ledger identity key.
func (r *Rider) Email() string {
	return r.email
}

// District returns the district the rider serves, or nil for riders
// materialized by accrual only.
func (r *Rider) District() *kernel.District {
	return r.district
}

// Status returns the application status.
func (r *Rider) Status() ApprovalStatus {
	return r.status
}

// WorkStatus returns the current work status.
func (r *Rider) WorkStatus() WorkStatus {
	return r.workStatus
}

// Earnings returns the current withdrawable balance.
func (r *Rider) Earnings() float64 {
	return r.earnings
}

// TotalEarned returns the cumulative accrual. Monotonic non-decreasing.
func (r *Rider) TotalEarned() float64 {
	return r.totalEarned
}

// TotalCashout returns the cumulative withdrawal. Monotonic non-decreasing.
func (r *Rider) TotalCashout() float64 {
	return r.totalCashout
}

// Cashouts returns a copy of the withdrawal history.
func (r *Rider) Cashouts() []CashoutEntry {
	cashouts := make([]CashoutEntry, len(r.cashouts))
	copy(cashouts, r.cashouts)
	return cashouts
}

// SetStatus moves the application status. The move itself is unconstrained
// (an admin may re-review a decision); only the target value is validated.
func (r *Rider) SetStatus(status ApprovalStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// BeginDelivery marks the rider as carrying a parcel.
func (r *Rider) BeginDelivery() {
	r.workStatus = InDelivery
}

// FinishDelivery marks the rider as free again.
func (r *Rider) FinishDelivery() {
	r.workStatus = Free
}

// Accrue adds a delivery earning to the ledger, increasing both the balance
// and the cumulative total by the same amount so the ledger identity holds.
// A negative amount is rejected; zero is a permitted no-op.
func (r *Rider) Accrue(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"accrual amount", fmt.Errorf("%v is negative", amount))
	}

	r.earnings += amount
	r.totalEarned += amount
	return nil
}

// Cashout withdraws the entire balance: earnings drop to zero, totalCashout
// grows by the prior balance, and exactly one CashoutEntry is appended.
// Returns the withdrawn amount, or ErrNothingToCashout on an empty balance.
func (r *Rider) Cashout(at time.Time) (float64, error) {
	if r.earnings <= 0 {
		return 0, ErrNothingToCashout
	}

	entry, err := NewCashoutEntry(r.earnings, at)
	if err != nil {
		return 0, err
	}

	amount := r.earnings
	r.earnings = 0
	r.totalCashout += amount
	r.cashouts = append(r.cashouts, entry)
	return amount, nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("rider name")
	}
	r.name = name
	return nil
}

func (r *Rider) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("rider email")
	}
	r.email = email
	return nil
}
