package commands

import (
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a rider confirming delivery of a parcel.
// The rider email is the ledger identity the earning accrues to.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	riderEmail string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a delivery-confirmation command.
func NewMarkDeliveredCommand(parcelID kernel.UUID, riderEmail string) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRiderEmail(riderEmail),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ParcelID returns the delivered parcel.
func (c MarkDeliveredCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderEmail returns the ledger identity the earning accrues to.
func (c MarkDeliveredCommand) RiderEmail() string {
	return c.riderEmail
}

func (c *MarkDeliveredCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *MarkDeliveredCommand) setRiderEmail(riderEmail string) error {
	if riderEmail == "" {
		return errs.NewValueIsRequiredError("rider email")
	}
	c.riderEmail = riderEmail
	return nil
}
