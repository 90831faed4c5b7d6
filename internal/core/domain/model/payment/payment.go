// Package payment contains the immutable Payment receipt. A Payment is
// created exactly once per successful payment confirmation and is never
// mutated or deleted afterwards.
package payment

import (
	"errors"
	"fmt"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is the durable receipt of a completed payment for a parcel.
// All fields are fixed at creation.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	trackingID    string
	amount        float64
	currency      string
	payerEmail    string
	transactionID string
	method        string
	paidAt        time.Time

	isConstructed bool
}

// NewPayment creates a payment receipt. Amount must be positive; parcel
// reference, payer and transaction id are required.
func NewPayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	trackingID string,
	amount float64,
	currency string,
	payerEmail string,
	transactionID string,
	method string,
	paidAt time.Time,
) (*Payment, error) {
	p := &Payment{
		trackingID: trackingID,
		currency:   currency,
		method:     method,
		paidAt:     paidAt,

		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setParcelID(parcelID),
		p.setAmount(amount),
		p.setPayerEmail(payerEmail),
		p.setTransactionID(transactionID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment receipt from persistence.
func RestorePayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	trackingID string,
	amount float64,
	currency string,
	payerEmail string,
	transactionID string,
	method string,
	paidAt time.Time,
) (*Payment, error) {
	return NewPayment(id, parcelID, trackingID, amount, currency, payerEmail, transactionID, method, paidAt)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// ParcelID returns the parcel this payment settles.
func (p *Payment) ParcelID() kernel.UUID {
	return p.parcelID
}

// TrackingID returns the public tracking id of the settled parcel.
func (p *Payment) TrackingID() string {
	return p.trackingID
}

// Amount returns the paid amount.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Currency returns the ISO currency code of the payment.
func (p *Payment) Currency() string {
	return p.currency
}

// PayerEmail returns the identity of the payer.
func (p *Payment) PayerEmail() string {
	return p.payerEmail
}

// TransactionID returns the processor's transaction reference.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// Method returns the payment method as reported by the processor.
func (p *Payment) Method() string {
	return p.method
}

// PaidAt returns when the payment completed.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcel id", err)
	}
	p.parcelID = id
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setPayerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("payer email")
	}
	p.payerEmail = email
	return nil
}

func (p *Payment) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	p.transactionID = transactionID
	return nil
}
