// Package kernel provides core domain primitives shared by the parcel,
// rider and payment models.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - District: a value object for the administrative area of senders, receivers and riders
//
// These primitives are immutable, thread-safe, and enforce their invariants
// at construction so the aggregates built on top of them never hold an
// invalid identity or district.
package kernel
