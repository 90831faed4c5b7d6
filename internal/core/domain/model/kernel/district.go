package kernel

import (
	"strings"

	"parcelpilot/internal/pkg/errs"

	"parcelpilot/internal/pkg/guard"
)

// ErrDistrictIsNotConstructed indicates that a District was not created via NewDistrict.
var ErrDistrictIsNotConstructed = errs.NewValueIsRequiredError(
	"district must be created via NewDistrict")

// District is a value object naming the administrative area a parcel is sent
// from or delivered to, and the area a rider serves. The rider payout split
// depends on whether the sender and receiver districts match, so District
// comparison is normalized: surrounding whitespace is trimmed and matching is
// case-insensitive.
//
// The zero value is invalid; construct via NewDistrict.
type District struct {
	name string

	guard guard.ConstructorGuard
}

// NewDistrict creates a District from a raw name. The name is trimmed;
// an empty result is rejected.
func NewDistrict(name string) (District, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return District{}, errs.NewValueIsRequiredError("district")
	}

	return District{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the district name as supplied (trimmed).
func (d District) Name() string {
	return d.name
}

// IsEqual reports whether two districts name the same area.
// The comparison ignores case.
func (d District) IsEqual(other District) bool {
	return strings.EqualFold(d.name, other.name)
}

// Validate returns ErrDistrictIsNotConstructed for a zero-value District.
func (d District) Validate() error {
	return d.guard.Validate(ErrDistrictIsNotConstructed)
}
