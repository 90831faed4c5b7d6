package commands

import (
	"context"
	"time"
)

// StartDeliveryCommandHandler moves a parcel to Parcel-picked when the rider
// collects it. Only the parcel is written; the rider is already in-delivery
// since assignment.
type StartDeliveryCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for pickup confirmation.
func NewStartDeliveryCommandHandler(uowFactory ParcelUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup. Fails with a not-found error if the parcel is
// absent; rejects parcels not in Rider-assigned.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, command StartDeliveryCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.StartDelivery(command.RiderName(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
