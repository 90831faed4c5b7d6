package commands

import (
	"context"
)

// DeleteParcelCommandHandler removes a parcel and its embedded log.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the parcel. Fails with a not-found error if it is absent.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, command DeleteParcelCommand) error {
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

	if err := uow.ParcelRepository().Delete(ctx, command.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
