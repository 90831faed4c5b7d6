package rider

import (
	"fmt"

	"parcelpilot/internal/pkg/errs"
)

// ApprovalStatus tracks an application to ride: every rider starts pending
// and an admin either accepts or rejects them.
type ApprovalStatus int

const (
	// UnknownApprovalStatus represents an invalid or undefined status.
	UnknownApprovalStatus ApprovalStatus = iota

	// Pending is the initial status of a rider application.
	Pending

	// Accepted means an admin approved the application.
	Accepted

	// Rejected means an admin declined the application.
	Rejected
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		UnknownApprovalStatus: "Unknown",
		Pending:               "pending",
		Accepted:              "accepted",
		Rejected:              "rejected",
	}
}

// ApprovalStatusFromString parses the storage/wire form of an approval status.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "accepted":
		return Accepted, nil
	case "rejected":
		return Rejected, nil
	default:
		return UnknownApprovalStatus, errs.NewValueIsInvalidErrorWithCause(
			"approval status", fmt.Errorf("%q is not a valid approval status", s))
	}
}

// Validate checks that the status is one of pending, accepted or rejected.
func (s ApprovalStatus) Validate() error {
	if s != Pending && s != Accepted && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"approval status", fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the wire form of the status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// WorkStatus tracks whether a rider currently carries a parcel. It is set by
// the assignment and delivery transitions; there is no precondition on the
// move itself because the parcel state machine already serializes the
// lifecycle.
type WorkStatus int

const (
	// UnknownWorkStatus represents an invalid or undefined status.
	UnknownWorkStatus WorkStatus = iota

	// Free means the rider has no active delivery.
	Free

	// InDelivery means the rider is carrying a parcel.
	InDelivery
)

func getWorkStatusStrings() map[WorkStatus]string {
	return map[WorkStatus]string{
		UnknownWorkStatus: "Unknown",
		Free:              "free",
		InDelivery:        "in-delivery",
	}
}

// WorkStatusFromString parses the storage/wire form of a work status.
func WorkStatusFromString(s string) (WorkStatus, error) {
	switch s {
	case "free":
		return Free, nil
	case "in-delivery":
		return InDelivery, nil
	default:
		return UnknownWorkStatus, errs.NewValueIsInvalidErrorWithCause(
			"work status", fmt.Errorf("%q is not a valid work status", s))
	}
}

// Validate checks that the status is free or in-delivery.
func (s WorkStatus) Validate() error {
	if s != Free && s != InDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"work status", fmt.Errorf("%d is not a valid work status", s))
	}
	return nil
}

// String returns the wire form of the status.
func (s WorkStatus) String() string {
	if str, ok := getWorkStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
