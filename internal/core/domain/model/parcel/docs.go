// Package parcel contains the Parcel aggregate and its two orthogonal state
// machines: the delivery lifecycle (Created -> Rider-assigned -> Parcel-picked
// -> Delivered) and the payment dimension (unpaid -> paid). Every transition
// appends an entry to the parcel's embedded audit trail, so the trail and the
// status can never diverge inside the aggregate.
package parcel
