package commands

import (
	"errors"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// ConfirmPaymentCommand represents a completed payment reported for a
// parcel: the immutable receipt to record and the parcel to flip to paid.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	amount        float64
	currency      string
	payerEmail    string
	transactionID string
	method        string
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a payment-confirmation command.
func NewConfirmPaymentCommand(
	parcelID kernel.UUID,
	amount float64,
	currency string,
	payerEmail string,
	transactionID string,
	method string,
	paidAt time.Time,
) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		currency: currency,
		method:   method,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAmount(amount),
		cmd.setPayerEmail(payerEmail),
		cmd.setTransactionID(transactionID),
		cmd.setPaidAt(paidAt),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// ParcelID returns the parcel being settled.
func (c ConfirmPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Amount returns the paid amount.
func (c ConfirmPaymentCommand) Amount() float64 {
	return c.amount
}

// Currency returns the ISO currency code.
func (c ConfirmPaymentCommand) Currency() string {
	return c.currency
}

// PayerEmail returns the payer identity.
func (c ConfirmPaymentCommand) PayerEmail() string {
	return c.payerEmail
}

// TransactionID returns the processor's transaction reference.
func (c ConfirmPaymentCommand) TransactionID() string {
	return c.transactionID
}

// Method returns the payment method.
func (c ConfirmPaymentCommand) Method() string {
	return c.method
}

// PaidAt returns when the payment completed.
func (c ConfirmPaymentCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c *ConfirmPaymentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *ConfirmPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}
	c.amount = amount
	return nil
}

func (c *ConfirmPaymentCommand) setPayerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("payer email")
	}
	c.payerEmail = email
	return nil
}

func (c *ConfirmPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	c.transactionID = transactionID
	return nil
}

func (c *ConfirmPaymentCommand) setPaidAt(paidAt time.Time) error {
	if paidAt.IsZero() {
		return errs.NewValueIsRequiredError("paid at")
	}
	c.paidAt = paidAt
	return nil
}
