package commands

import (
	"context"
	"time"

	"parcelpilot/internal/core/domain/services"
)

// MarkDeliveredCommandHandler orchestrates the delivery-completion
// transition: the parcel moves to Delivered with a log append, the payout is
// computed from the cost on the parcel at this moment, and the earning
// accrues to the rider matched by email. The rider is resolved through the
// explicit get-or-create boundary, so an email nobody registered still
// accumulates earnings. Both writes run in one unit of work.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
	calculator services.PayoutCalculator
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPayoutCalculator(),
	}
}

// Handle processes the completion. Fails with a not-found error if the
// parcel is absent; rejects parcels not in Parcel-picked.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) error {
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
	riderRepo := uow.RiderRepository()

	aggregate, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	earning, err := h.calculator.Earning(aggregate)
	if err != nil {
		return err
	}

	courier, err := riderRepo.GetOrCreateByEmail(ctx, command.RiderEmail())
	if err != nil {
		return err
	}

	if err = courier.Accrue(earning); err != nil {
		return err
	}
	courier.FinishDelivery()

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
