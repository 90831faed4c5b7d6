package commands

import (
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrApplyRiderCommandIsNotConstructed = errors.New(
	"ApplyRiderCommand must be created via NewApplyRiderCommand constructor",
)

// ApplyRiderCommand represents a user applying to become a rider.
// The application starts pending until an admin reviews it.
type ApplyRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	name     string
	email    string
	district kernel.District

	guard guard.ConstructorGuard
}

// NewApplyRiderCommand creates a rider application command.
func NewApplyRiderCommand(riderID kernel.UUID, name, email string, district kernel.District) (ApplyRiderCommand, error) {
	cmd := ApplyRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setDistrict(district),
	); err != nil {
		return ApplyRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c ApplyRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the applicant's display name.
func (c ApplyRiderCommand) Name() string {
	return c.name
}

// Email returns the applicant's unique email.
func (c ApplyRiderCommand) Email() string {
	return c.email
}

// District returns the district the applicant wants to serve.
func (c ApplyRiderCommand) District() kernel.District {
	return c.district
}

func (c *ApplyRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}

func (c *ApplyRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("rider name")
	}
	c.name = name
	return nil
}

func (c *ApplyRiderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("rider email")
	}
	c.email = email
	return nil
}

func (c *ApplyRiderCommand) setDistrict(district kernel.District) error {
	if err := district.Validate(); err != nil {
		return err
	}
	c.district = district
	return nil
}
