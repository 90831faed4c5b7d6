// Package services provides domain services that implement business logic
// spanning multiple aggregates.
//
// The package includes:
//   - PayoutCalculator: computes the rider earning for a delivered parcel
//     from its declared cost and the sender/receiver district match
package services
