package commands

import (
	"context"

	"parcelpilot/internal/core/domain/model/rider"
)

// ApplyRiderCommandHandler persists new rider applications in the pending state.
type ApplyRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewApplyRiderCommandHandler creates a handler for rider applications.
func NewApplyRiderCommandHandler(uowFactory RiderUoWFactory) ApplyRiderCommandHandler {
	return ApplyRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the rider aggregate (pending, free, empty ledger) and saves it.
func (h ApplyRiderCommandHandler) Handle(ctx context.Context, command ApplyRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	applicant, err := rider.NewRider(command.RiderID(), command.Name(), command.Email(), command.District())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderRepository().Add(ctx, applicant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
