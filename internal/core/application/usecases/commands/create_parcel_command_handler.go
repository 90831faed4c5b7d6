package commands

import (
	"context"
	"time"

	"parcelpilot/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler persists new parcels in their initial state.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the parcel aggregate (status Created, payment unpaid, one
// "created" log entry) and saves it.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		command.ParcelID(),
		command.TrackingID(),
		command.SenderName(),
		command.SenderEmail(),
		command.SenderDistrict(),
		command.ReceiverName(),
		command.ReceiverAddress(),
		command.ReceiverDistrict(),
		command.Cost(),
		time.Now().UTC(),
	)
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

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
