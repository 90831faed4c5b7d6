package commands

import (
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
	"parcelpilot/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrCostIsInvalid = errors.New("cost must be greater than 0")
)

// CreateParcelCommand represents a request to register a new parcel.
// The parcel starts in the Created/unpaid state with its initial log entry.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	trackingID       string
	senderName       string
	senderEmail      string
	senderDistrict   kernel.District
	receiverName     string
	receiverAddress  string
	receiverDistrict kernel.District
	cost             float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel. Validates
// identifiers, districts, required sender/receiver fields and a positive cost.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	trackingID string,
	senderName string,
	senderEmail string,
	senderDistrict kernel.District,
	receiverName string,
	receiverAddress string,
	receiverDistrict kernel.District,
	cost float64,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingID(trackingID),
		cmd.setSender(senderName, senderEmail, senderDistrict),
		cmd.setReceiver(receiverName, receiverAddress, receiverDistrict),
		cmd.setCost(cost),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingID returns the public tracking identifier.
func (c CreateParcelCommand) TrackingID() string {
	return c.trackingID
}

// SenderName returns the sender's display name.
func (c CreateParcelCommand) SenderName() string {
	return c.senderName
}

// SenderEmail returns the sender's email.
func (c CreateParcelCommand) SenderEmail() string {
	return c.senderEmail
}

// SenderDistrict returns the origin district.
func (c CreateParcelCommand) SenderDistrict() kernel.District {
	return c.senderDistrict
}

// ReceiverName returns the receiver's display name.
func (c CreateParcelCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverAddress returns the delivery street address.
func (c CreateParcelCommand) ReceiverAddress() string {
	return c.receiverAddress
}

// ReceiverDistrict returns the destination district.
func (c CreateParcelCommand) ReceiverDistrict() kernel.District {
	return c.receiverDistrict
}

// Cost returns the declared cost of the shipment.
func (c CreateParcelCommand) Cost() float64 {
	return c.cost
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return errs.NewValueIsRequiredError("tracking id")
	}
	c.trackingID = trackingID
	return nil
}

func (c *CreateParcelCommand) setSender(name, email string, district kernel.District) error {
	if email == "" {
		return errs.NewValueIsRequiredError("sender email")
	}
	if err := district.Validate(); err != nil {
		return err
	}
	c.senderName = name
	c.senderEmail = email
	c.senderDistrict = district
	return nil
}

func (c *CreateParcelCommand) setReceiver(name, address string, district kernel.District) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	if err := district.Validate(); err != nil {
		return err
	}
	c.receiverName = name
	c.receiverAddress = address
	c.receiverDistrict = district
	return nil
}

func (c *CreateParcelCommand) setCost(cost float64) error {
	if cost <= 0 {
		return ErrCostIsInvalid
	}
	c.cost = cost
	return nil
}
