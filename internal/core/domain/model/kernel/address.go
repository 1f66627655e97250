package kernel

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery destination for a requisition. Manual shipment entry
// requires a complete address, so every field is validated individually and a
// missing field is reported by name rather than as a generic failure.
type Address struct { //nolint:recvcheck //using for validation
	line1   string
	city    string
	state   string
	pincode Pincode

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. All fields are required; validation
// errors for each missing field are joined so the caller sees everything that is
// wrong at once.
func NewAddress(line1, city, state string, pincode Pincode) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setLine1(line1),
		addr.setCity(city),
		addr.setState(state),
		addr.setPincode(pincode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line1 returns the street line of the address.
func (a Address) Line1() string {
	return a.line1
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region.
func (a Address) State() string {
	return a.state
}

// Pincode returns the destination pincode.
func (a Address) Pincode() Pincode {
	return a.pincode
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("address line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("address city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("address state")
	}
	a.state = state
	return nil
}

func (a *Address) setPincode(pincode Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	a.pincode = pincode
	return nil
}
