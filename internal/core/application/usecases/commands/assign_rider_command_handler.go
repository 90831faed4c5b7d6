package commands

import (
	"context"
	"time"

	"parcelpilot/internal/core/domain/model/parcel"
)

// AssignRiderCommandHandler orchestrates the rider-assignment transition:
// the parcel moves to Rider-assigned with a log append, and the rider's work
// status moves to in-delivery. Both writes run in one unit of work, so the
// pair commits or rolls back together.
//
// The parcel is loaded before the rider is touched: a missing parcel fails
// with a not-found error and performs zero rider writes.
type AssignRiderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory DeliveryUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment. Fails with a not-found error if the
// parcel or rider id is absent; rejects parcels past Created.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
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

	assignee, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	err = aggregate.AssignRider(parcel.AssignedRider{
		ID:    assignee.ID(),
		Name:  assignee.Name(),
		Email: assignee.Email(),
	}, time.Now().UTC())
	if err != nil {
		return err
	}

	assignee.BeginDelivery()

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
