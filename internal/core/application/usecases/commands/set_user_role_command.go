package commands

import (
	"errors"

	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/guard"
)

var ErrSetUserRoleCommandIsNotConstructed = errors.New(
	"SetUserRoleCommand must be created via NewSetUserRoleCommand constructor",
)

// SetUserRoleCommand represents an admin promoting or demoting an account
// (make-admin / remove-admin).
type SetUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   account.Role

	guard guard.ConstructorGuard
}

// NewSetUserRoleCommand creates a role-change command.
func NewSetUserRoleCommand(userID kernel.UUID, role account.Role) (SetUserRoleCommand, error) {
	cmd := SetUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return SetUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetUserRoleCommandIsNotConstructed)
}

// UserID returns the account being changed.
func (c SetUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to set.
func (c SetUserRoleCommand) Role() account.Role {
	return c.role
}

func (c *SetUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *SetUserRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
