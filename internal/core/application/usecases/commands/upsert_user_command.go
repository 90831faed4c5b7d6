package commands

import (
	"errors"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrUpsertUserCommandIsNotConstructed = errors.New(
	"UpsertUserCommand must be created via NewUpsertUserCommand constructor",
)

// UpsertUserCommand represents an account registration or login. Creating a
// user whose email already exists succeeds and refreshes the last-login
// timestamp instead of failing.
type UpsertUserCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewUpsertUserCommand creates an upsert command for the given identity.
func NewUpsertUserCommand(name, email string) (UpsertUserCommand, error) {
	cmd := UpsertUserCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return UpsertUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertUserCommand) Validate() error {
	return c.guard.Validate(ErrUpsertUserCommandIsNotConstructed)
}

// Name returns the account display name.
func (c UpsertUserCommand) Name() string {
	return c.name
}

// Email returns the unique account email.
func (c UpsertUserCommand) Email() string {
	return c.email
}

func (c *UpsertUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.email = email
	return nil
}
