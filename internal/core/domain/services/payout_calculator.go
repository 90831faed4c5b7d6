package services

import (
	"parcelpilot/internal/core/domain/model/parcel"
)

// Payout split applied to the parcel's declared cost at delivery time.
const (
	sameDistrictShare  = 0.8
	crossDistrictShare = 0.3
)

// PayoutCalculator is a domain service computing the earning a rider accrues
// for a delivered parcel.
//
// Business rules:
//   - same-district delivery pays 80% of the declared cost
//   - cross-district delivery pays 30% of the declared cost
//   - the cost used is the one present on the parcel at the moment of
//     delivery, not at assignment time
//
// Example usage:
//
//	calculator := NewPayoutCalculator()
//	earning, err := calculator.Earning(deliveredParcel)
//	if err != nil {
//	    // parcel was not properly constructed
//	}
//	// accrue earning to the rider ledger
type PayoutCalculator struct{}

// NewPayoutCalculator creates a new PayoutCalculator instance.
func NewPayoutCalculator() PayoutCalculator {
	return PayoutCalculator{}
}

// Earning computes the rider payout for the given parcel from its declared
// cost and the sender/receiver district match.
func (c PayoutCalculator) Earning(p *parcel.Parcel) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	if p.IsSameDistrictDelivery() {
		return p.Cost() * sameDistrictShare, nil
	}
	return p.Cost() * crossDistrictShare, nil
}
