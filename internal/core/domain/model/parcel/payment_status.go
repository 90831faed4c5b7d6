package parcel

import (
	"fmt"

	"parcelpilot/internal/pkg/errs"
)

// PaymentStatus is the payment dimension of a parcel's lifecycle. It advances
// independently of DeliveryStatus:
//
//	Unpaid ──> Paid
//
// Paid is terminal; a second payment confirmation is rejected.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined status.
	UnknownPaymentStatus PaymentStatus = iota

	// Unpaid is the initial payment status on parcel creation.
	Unpaid

	// Paid indicates a payment record exists for the parcel. Terminal state.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPaymentStatus: "Unknown",
		Unpaid:               "unpaid",
		Paid:                 "paid",
	}
}

// PaymentStatusFromString parses the storage/wire form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch s {
	case "unpaid":
		return Unpaid, nil
	case "paid":
		return Paid, nil
	default:
		return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

// Validate checks that the status is Unpaid or Paid.
func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire form of the status, or "Unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transition: Unpaid -> Paid.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != Unpaid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}

	return Paid, nil
}
