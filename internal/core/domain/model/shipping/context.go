package shipping

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// Mode is the company-level shipping mode: whether shipments are entered by an
// operator or issued through the carrier-aggregator integration.
type Mode int

const (
	// UnknownMode is the zero value and is not a valid mode.
	UnknownMode Mode = iota

	// Manual means shipments are entered by an operator with an AWB number.
	Manual

	// Automatic means shipments are issued through the carrier aggregator.
	Automatic
)

func modeStrings() map[Mode]string {
	return map[Mode]string{
		Manual:    "MANUAL",
		Automatic: "AUTOMATIC",
	}
}

// Validate returns an error when the Mode is not one of the defined values.
func (m Mode) Validate() error {
	if _, ok := modeStrings()[m]; !ok {
		return errs.NewValueIsInvalidError("shipping mode")
	}
	return nil
}

// String returns the raw mode literal, or empty for unknown values.
func (m Mode) String() string {
	return modeStrings()[m]
}

// ErrContextIsNotConstructed is returned when a Context was not created via
// NewContext.
var ErrContextIsNotConstructed = errors.New("Context must be created via NewContext")

// Context is the resolved shipping decision for one (company, vendor,
// destination) triple: the effective mode after the global integration flag is
// applied, the courier routing to use when one is configured, and the source
// warehouse pincode. It is derived on every read and never persisted.
type Context struct {
	mode               Mode
	hasRouting         bool
	providerCode       string
	primaryCourier     string
	secondaryCourier   string
	sourcePincode      kernel.Pincode
	destinationPincode kernel.Pincode

	guard guard.ConstructorGuard
}

// NewManualContext creates a Context for manual shipment entry. Routing and
// source fields stay empty: a manual shipment needs neither.
func NewManualContext(destination kernel.Pincode) (*Context, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	return &Context{
		mode:               Manual,
		destinationPincode: destination,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// NewAutomaticContext creates a Context for aggregator-issued shipments.
// The routing is optional: when nil the context carries hasRouting=false and
// the caller must fall back to manual entry. The source pincode is required
// because automatic mode always dispatches from a concrete warehouse.
func NewAutomaticContext(routing *CourierRouting, source, destination kernel.Pincode) (*Context, error) {
	if err := errors.Join(source.Validate(), destination.Validate()); err != nil {
		return nil, err
	}

	c := &Context{
		mode:               Automatic,
		sourcePincode:      source,
		destinationPincode: destination,
		guard:              guard.NewConstructorGuard(),
	}

	if routing != nil {
		if err := routing.Validate(); err != nil {
			return nil, err
		}
		c.hasRouting = true
		c.providerCode = routing.ProviderCode()
		c.primaryCourier = routing.PrimaryCourier()
		c.secondaryCourier = routing.SecondaryCourier()
	}

	return c, nil
}

// Validate ensures the Context was created through a constructor.
func (c *Context) Validate() error {
	if c == nil {
		return ErrContextIsNotConstructed
	}
	return c.guard.Validate(ErrContextIsNotConstructed)
}

// Mode returns the effective shipping mode after the global flag is applied.
func (c *Context) Mode() Mode { return c.mode }

// HasRouting reports whether a courier routing is configured and the mode is
// automatic. When false the caller must fall back to manual entry.
func (c *Context) HasRouting() bool { return c.hasRouting }

// ProviderCode returns the aggregator provider code, empty without routing.
func (c *Context) ProviderCode() string { return c.providerCode }

// PrimaryCourier returns the first-choice courier code, empty without routing.
func (c *Context) PrimaryCourier() string { return c.primaryCourier }

// SecondaryCourier returns the fallback courier code, empty when none is configured.
func (c *Context) SecondaryCourier() string { return c.secondaryCourier }

// HasSecondaryCourier reports whether a fallback courier is configured.
func (c *Context) HasSecondaryCourier() bool { return c.secondaryCourier != "" }

// SourcePincode returns the dispatch warehouse pincode. It is the zero value
// for manual contexts.
func (c *Context) SourcePincode() kernel.Pincode { return c.sourcePincode }

// DestinationPincode returns the delivery pincode.
func (c *Context) DestinationPincode() kernel.Pincode { return c.destinationPincode }
