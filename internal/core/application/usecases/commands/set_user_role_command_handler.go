package commands

import (
	"context"
)

// SetUserRoleCommandHandler changes an account's capability level.
type SetUserRoleCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetUserRoleCommandHandler creates a handler for role changes.
func NewSetUserRoleCommandHandler(uowFactory AccountUoWFactory) SetUserRoleCommandHandler {
	return SetUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change. Fails with a not-found error if the
// account is absent.
func (h SetUserRoleCommandHandler) Handle(ctx context.Context, command SetUserRoleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	user, err := accountRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = user.SetRole(command.Role()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
