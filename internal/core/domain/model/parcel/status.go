package parcel

import (
	"fmt"

	"parcelpilot/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle state of a parcel.
// It implements a forward-only state machine:
//
//	Created ──> RiderAssigned ──> ParcelPicked ──> Delivered
//
// No transition skips or reverses a state; Delivered is terminal.
type DeliveryStatus int

const (
	// UnknownDeliveryStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	UnknownDeliveryStatus DeliveryStatus = iota

	// Created is the initial status assigned on parcel creation.
	Created

	// RiderAssigned indicates an admin has assigned a rider to the parcel.
	RiderAssigned

	// ParcelPicked indicates the rider has collected the parcel from the sender.
	ParcelPicked

	// Delivered indicates the parcel reached the receiver. Terminal state.
	Delivered
)

// Wire/storage representations. These match the public status strings the
// tracking trail and the parcel list filters use.
func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDeliveryStatus: "Unknown",
		Created:               "Created",
		RiderAssigned:         "Rider-assigned",
		ParcelPicked:          "Parcel-picked",
		Delivered:             "Delivered",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // UnknownDeliveryStatus is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		Created:       "Created",
		RiderAssigned: "Rider-assigned",
		ParcelPicked:  "Parcel-picked",
		Delivered:     "Delivered",
	}
}

// DeliveryStatusFromString parses the storage/wire form of a delivery status.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getValidDeliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"delivery status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the status is one of the defined lifecycle states.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire form of the status, or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AssignRider transitions the status to RiderAssigned.
//
// Valid transition: Created -> RiderAssigned. Any other origin is rejected,
// which also hard-locks delivered parcels against reassignment.
func (s DeliveryStatus) AssignRider() (DeliveryStatus, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to assign a rider", s.String()),
		)
	}

	return RiderAssigned, nil
}

// StartDelivery transitions the status to ParcelPicked.
//
// Valid transition: RiderAssigned -> ParcelPicked.
func (s DeliveryStatus) StartDelivery() (DeliveryStatus, error) {
	if s != RiderAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}

	return ParcelPicked, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transition: ParcelPicked -> Delivered. Delivered is a final state
// with no further transitions.
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != ParcelPicked {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
