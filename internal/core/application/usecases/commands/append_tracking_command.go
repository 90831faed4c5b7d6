package commands

import (
	"errors"

	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var ErrAppendTrackingCommandIsNotConstructed = errors.New(
	"AppendTrackingCommand must be created via NewAppendTrackingCommand constructor",
)

// AppendTrackingCommand represents a ping on the public tracking trail.
type AppendTrackingCommand struct { //nolint:recvcheck //using for validation
	trackingID string
	status     string
	location   string
	updatedBy  string

	guard guard.ConstructorGuard
}

// NewAppendTrackingCommand creates a tracking-append command. Location may be
// empty; tracking id, status and updater identity are required.
func NewAppendTrackingCommand(trackingID, status, location, updatedBy string) (AppendTrackingCommand, error) {
	cmd := AppendTrackingCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setStatus(status),
		cmd.setUpdatedBy(updatedBy),
	); err != nil {
		return AppendTrackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingCommandIsNotConstructed)
}

// TrackingID returns the trail being appended to.
func (c AppendTrackingCommand) TrackingID() string {
	return c.trackingID
}

// Status returns the reported status text.
func (c AppendTrackingCommand) Status() string {
	return c.status
}

// Location returns the reported location, possibly empty.
func (c AppendTrackingCommand) Location() string {
	return c.location
}

// UpdatedBy returns the identity of the reporting caller.
func (c AppendTrackingCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *AppendTrackingCommand) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return errs.NewValueIsRequiredError("tracking id")
	}
	c.trackingID = trackingID
	return nil
}

func (c *AppendTrackingCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("tracking status")
	}
	c.status = status
	return nil
}

func (c *AppendTrackingCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updated by")
	}
	c.updatedBy = updatedBy
	return nil
}
