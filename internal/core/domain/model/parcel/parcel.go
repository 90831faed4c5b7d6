package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrNoRiderAssigned is returned when a transition requires an assigned rider
	// but the parcel has none.
	ErrNoRiderAssigned = errors.New("parcel has no assigned rider")
)

// AssignedRider identifies the rider currently responsible for a parcel.
type AssignedRider struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// Parcel is the aggregate root of the delivery lifecycle. It owns the
// delivery and payment state machines and the embedded append-only audit
// trail; every transition both moves a status and appends a log entry, so the
// trail is non-empty as soon as the status leaves Created.
//
// Invariants:
//   - delivery status only moves forward: Created -> RiderAssigned -> ParcelPicked -> Delivered
//   - payment status only moves forward: Unpaid -> Paid
//   - a parcel past Created always carries at least one log entry
//   - declared cost is positive
//
// Construct only via NewParcel (new parcels) or RestoreParcel (persistence).
type Parcel struct {
	id         kernel.UUID
	trackingID string

	senderName     string
	senderEmail    string
	senderDistrict kernel.District

	receiverName     string
	receiverAddress  string
	receiverDistrict kernel.District

	cost float64

	deliveryStatus DeliveryStatus
	paymentStatus  PaymentStatus

	assignedRider *AssignedRider

	creationDate time.Time
	logs         []LogEntry

	isConstructed bool
}

// NewParcel creates a parcel in the initial lifecycle state: delivery status
// Created, payment status Unpaid, and a single "created" log entry stamped
// with the creation time.
func NewParcel(
	id kernel.UUID,
	trackingID string,
	senderName string,
	senderEmail string,
	senderDistrict kernel.District,
	receiverName string,
	receiverAddress string,
	receiverDistrict kernel.District,
	cost float64,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		deliveryStatus: Created,
		paymentStatus:  Unpaid,
		creationDate:   createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setSender(senderName, senderEmail, senderDistrict),
		p.setReceiver(receiverName, receiverAddress, receiverDistrict),
		p.setCost(cost),
	); err != nil {
		return nil, err
	}

	entry, err := NewLogEntry(Created.String(), "created", createdAt)
	if err != nil {
		return nil, err
	}
	p.logs = []LogEntry{entry}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence. Statuses are
// validated but transition rules are not re-run; the stored state is taken
// as authoritative.
func RestoreParcel(
	id kernel.UUID,
	trackingID string,
	senderName string,
	senderEmail string,
	senderDistrict kernel.District,
	receiverName string,
	receiverAddress string,
	receiverDistrict kernel.District,
	cost float64,
	deliveryStatus DeliveryStatus,
	paymentStatus PaymentStatus,
	assignedRider *AssignedRider,
	creationDate time.Time,
	logs []LogEntry,
) (*Parcel, error) {
	p := &Parcel{
		deliveryStatus: deliveryStatus,
		paymentStatus:  paymentStatus,
		assignedRider:  assignedRider,
		creationDate:   creationDate,
		logs:           logs,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setSender(senderName, senderEmail, senderDistrict),
		p.setReceiver(receiverName, receiverAddress, receiverDistrict),
		p.setCost(cost),
		deliveryStatus.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingID returns the public tracking identifier.
func (p *Parcel) TrackingID() string {
	return p.trackingID
}

// SenderName returns the sender's display name.
func (p *Parcel) SenderName() string {
	return p.senderName
}

// SenderEmail returns the sender's email.
func (p *Parcel) SenderEmail() string {
	return p.senderEmail
}

// SenderDistrict returns the district the parcel ships from.
func (p *Parcel) SenderDistrict() kernel.District {
	return p.senderDistrict
}

// ReceiverName returns the receiver's display name.
func (p *Parcel) ReceiverName() string {
	return p.receiverName
}

// ReceiverAddress returns the delivery street address.
func (p *Parcel) ReceiverAddress() string {
	return p.receiverAddress
}

// ReceiverDistrict returns the district the parcel ships to.
func (p *Parcel) ReceiverDistrict() kernel.District {
	return p.receiverDistrict
}

// Cost returns the declared cost of the shipment.
func (p *Parcel) Cost() float64 {
	return p.cost
}

// DeliveryStatus returns the current lifecycle state.
func (p *Parcel) DeliveryStatus() DeliveryStatus {
	return p.deliveryStatus
}

// PaymentStatus returns the current payment state.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// AssignedRider returns the rider responsible for the parcel, or nil before
// assignment.
func (p *Parcel) AssignedRider() *AssignedRider {
	return p.assignedRider
}

// CreationDate returns when the parcel was created.
func (p *Parcel) CreationDate() time.Time {
	return p.creationDate
}

// Logs returns the audit trail sorted ascending by timestamp. Storage order
// is not trusted; the slice is a copy and safe to modify.
func (p *Parcel) Logs() []LogEntry {
	logs := make([]LogEntry, len(p.logs))
	copy(logs, p.logs)
	sortLogEntries(logs)
	return logs
}

// IsSameDistrictDelivery reports whether sender and receiver are in the same
// district. The rider payout split depends on this.
func (p *Parcel) IsSameDistrictDelivery() bool {
	return p.senderDistrict.IsEqual(p.receiverDistrict)
}

// AssignRider transitions the parcel to RiderAssigned, records the rider and
// appends a "rider assigned" log entry.
//
// Valid only from Created; delivered parcels cannot be reassigned.
func (p *Parcel) AssignRider(rider AssignedRider, at time.Time) error {
	if err := rider.ID.Validate(); err != nil {
		return err
	}
	if rider.Email == "" {
		return errs.NewValueIsRequiredError("rider email")
	}

	newStatus, err := p.deliveryStatus.AssignRider()
	if err != nil {
		return err
	}

	entry, err := NewLogEntry(newStatus.String(), "rider assigned", at)
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.assignedRider = &rider
	p.logs = append(p.logs, entry)
	return nil
}

// StartDelivery transitions the parcel to ParcelPicked and appends a log
// entry naming the rider who collected it.
//
// Valid only from RiderAssigned.
func (p *Parcel) StartDelivery(riderName string, at time.Time) error {
	if p.assignedRider == nil {
		return ErrNoRiderAssigned
	}

	newStatus, err := p.deliveryStatus.StartDelivery()
	if err != nil {
		return err
	}

	entry, err := NewLogEntry(newStatus.String(), fmt.Sprintf("picked up by %s", riderName), at)
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.logs = append(p.logs, entry)
	return nil
}

// MarkDelivered transitions the parcel to Delivered and appends a
// "delivered" log entry. The rider payout is computed by the caller from the
// cost present on the parcel at this moment, not at assignment time.
//
// Valid only from ParcelPicked. Delivered is terminal.
func (p *Parcel) MarkDelivered(at time.Time) error {
	if p.assignedRider == nil {
		return ErrNoRiderAssigned
	}

	newStatus, err := p.deliveryStatus.Deliver()
	if err != nil {
		return err
	}

	entry, err := NewLogEntry(newStatus.String(), "delivered", at)
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.logs = append(p.logs, entry)
	return nil
}

// ConfirmPayment transitions the payment dimension to Paid and appends a log
// entry recording the amount and method. A parcel already paid rejects a
// second confirmation.
func (p *Parcel) ConfirmPayment(amount float64, method string, at time.Time) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", amount))
	}

	newStatus, err := p.paymentStatus.Pay()
	if err != nil {
		return err
	}

	entry, err := NewLogEntry(p.deliveryStatus.String(),
		fmt.Sprintf("paid %.2f via %s", amount, method), at)
	if err != nil {
		return err
	}

	p.paymentStatus = newStatus
	p.logs = append(p.logs, entry)
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return errs.NewValueIsRequiredError("tracking id")
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setSender(name, email string, district kernel.District) error {
	if email == "" {
		return errs.NewValueIsRequiredError("sender email")
	}
	if err := district.Validate(); err != nil {
		return err
	}
	p.senderName = name
	p.senderEmail = email
	p.senderDistrict = district
	return nil
}

func (p *Parcel) setReceiver(name, address string, district kernel.District) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	if err := district.Validate(); err != nil {
		return err
	}
	p.receiverName = name
	p.receiverAddress = address
	p.receiverDistrict = district
	return nil
}

func (p *Parcel) setCost(cost float64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost", fmt.Errorf("%v is not greater than 0", cost))
	}
	p.cost = cost
	return nil
}
