package commands

import (
	"context"
	"time"

	"parcelpilot/internal/core/domain/model/tracking"
)

// AppendTrackingCommandHandler appends one ping to the public tracking
// trail, timestamped at call time. The trail is independent of the parcel's
// internal log and the two are allowed to diverge.
type AppendTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewAppendTrackingCommandHandler creates a handler for tracking appends.
func NewAppendTrackingCommandHandler(uowFactory TrackingUoWFactory) AppendTrackingCommandHandler {
	return AppendTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the ping.
func (h AppendTrackingCommandHandler) Handle(ctx context.Context, command AppendTrackingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(
		command.TrackingID(),
		command.Status(),
		command.Location(),
		command.UpdatedBy(),
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

	if err = uow.TrackingRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
