package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// PincodeLength is the number of digits in a valid postal pincode.
const PincodeLength = 6

// ErrPincodeIsNotConstructed is returned when attempting to use an improperly
// initialized Pincode. Pincodes must be created via NewPincode.
var ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode must be created via NewPincode constructor")

// Pincode represents a postal code used for serviceability lookups and shipment
// routing. It is an immutable value object; the zero value is invalid and fails
// validation.
//
// Example:
//
//	pin, err := kernel.NewPincode("560001")
//	if err != nil {
//	    // Handle validation error
//	}
type Pincode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPincode creates a Pincode from its string form. The value must be exactly
// PincodeLength digits; anything else is rejected with a validation error that
// names the offending input.
func NewPincode(value string) (Pincode, error) {
	pin := Pincode{
		guard: guard.NewConstructorGuard(),
	}

	if err := pin.setValue(value); err != nil {
		return Pincode{}, err
	}

	return pin, nil
}

// Validate checks that the Pincode was constructed via NewPincode.
func (p Pincode) Validate() error {
	return p.guard.Validate(ErrPincodeIsNotConstructed)
}

// String returns the pincode digits.
func (p Pincode) String() string {
	return p.value
}

// IsEqual compares two pincodes by value.
func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

func (p *Pincode) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	if len(value) != PincodeLength {
		return errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q must be exactly %d digits", value, PincodeLength))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	p.value = value
	return nil
}
