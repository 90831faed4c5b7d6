package commands

import (
	"errors"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrCashoutCommandIsNotConstructed = errors.New(
	"CashoutCommand must be created via NewCashoutCommand constructor",
)

// CashoutCommand represents a rider withdrawing their entire balance.
type CashoutCommand struct { //nolint:recvcheck //using for validation
	riderEmail string

	guard guard.ConstructorGuard
}

// NewCashoutCommand creates a cashout command for the rider with the given email.
func NewCashoutCommand(riderEmail string) (CashoutCommand, error) {
	cmd := CashoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRiderEmail(riderEmail); err != nil {
		return CashoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CashoutCommand) Validate() error {
	return c.guard.Validate(ErrCashoutCommandIsNotConstructed)
}

// RiderEmail returns the ledger identity withdrawing.
func (c CashoutCommand) RiderEmail() string {
	return c.riderEmail
}

func (c *CashoutCommand) setRiderEmail(riderEmail string) error {
	if riderEmail == "" {
		return errs.NewValueIsRequiredError("rider email")
	}
	c.riderEmail = riderEmail
	return nil
}
