package commands

import (
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a rider confirming pickup of a parcel.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	riderName string

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a pickup-confirmation command. The rider
// name is recorded in the parcel's log entry.
func NewStartDeliveryCommand(parcelID kernel.UUID, riderName string) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRiderName(riderName),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// ParcelID returns the parcel being picked up.
func (c StartDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderName returns the name of the rider confirming pickup.
func (c StartDeliveryCommand) RiderName() string {
	return c.riderName
}

func (c *StartDeliveryCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *StartDeliveryCommand) setRiderName(riderName string) error {
	if riderName == "" {
		return errs.NewValueIsRequiredError("rider name")
	}
	c.riderName = riderName
	return nil
}
