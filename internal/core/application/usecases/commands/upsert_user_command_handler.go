package commands

import (
	"context"
	"errors"
	"time"

	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
)

// UpsertUserCommandHandler registers an account or, when the email already
// exists, refreshes its last-login timestamp. Duplicate creation is success,
// not an error.
type UpsertUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpsertUserCommandHandler creates a handler for account upserts.
func NewUpsertUserCommandHandler(uowFactory AccountUoWFactory) UpsertUserCommandHandler {
	return UpsertUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert. Returns whether an account was newly created.
func (h UpsertUserCommandHandler) Handle(ctx context.Context, command UpsertUserCommand) (created bool, err error) {
	if err = command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	now := time.Now().UTC()

	existing, err := accountRepo.GetByEmail(ctx, command.Email())
	switch {
	case err == nil:
		existing.TouchLogin(now)
		if err = accountRepo.Update(ctx, existing); err != nil {
			return false, err
		}
		return false, uow.Commit(ctx)

	case errors.Is(err, errs.ErrObjectNotFound):
		user, newErr := account.NewUser(kernel.NewUUID(), command.Name(), command.Email(), now)
		if newErr != nil {
			return false, newErr
		}
		if err = accountRepo.Add(ctx, user); err != nil {
			return false, err
		}
		return true, uow.Commit(ctx)

	default:
		return false, err
	}
}
