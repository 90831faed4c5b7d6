package commands

import (
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/pkg/guard"
)

var ErrReviewRiderCommandIsNotConstructed = errors.New(
	"ReviewRiderCommand must be created via NewReviewRiderCommand constructor",
)

// ReviewRiderCommand represents an admin accepting or rejecting a rider
// application.
type ReviewRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	status  rider.ApprovalStatus

	guard guard.ConstructorGuard
}

// NewReviewRiderCommand creates a review command setting the given status.
func NewReviewRiderCommand(riderID kernel.UUID, status rider.ApprovalStatus) (ReviewRiderCommand, error) {
	cmd := ReviewRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setStatus(status),
	); err != nil {
		return ReviewRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRiderCommand) Validate() error {
	return c.guard.Validate(ErrReviewRiderCommandIsNotConstructed)
}

// RiderID returns the application being reviewed.
func (c ReviewRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Status returns the decision.
func (c ReviewRiderCommand) Status() rider.ApprovalStatus {
	return c.status
}

func (c *ReviewRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}

func (c *ReviewRiderCommand) setStatus(status rider.ApprovalStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
