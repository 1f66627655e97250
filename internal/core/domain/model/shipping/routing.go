package shipping

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrCourierRoutingIsNotConstructed is returned when a CourierRouting was not
// created via NewCourierRouting.
var ErrCourierRoutingIsNotConstructed = errors.New(
	"CourierRouting must be created via NewCourierRouting")

// CourierRouting is the per (vendor, company) carrier preference an
// administrator configures: which aggregator provider to use and which courier
// to try first, with an optional second choice. The workflow engine reads it,
// never writes it.
type CourierRouting struct {
	vendorID         kernel.UUID
	companyID        kernel.UUID
	providerCode     string
	primaryCourier   string
	secondaryCourier string

	guard guard.ConstructorGuard
}

// NewCourierRouting creates a validated CourierRouting. The secondary courier
// is optional; every other field is required.
func NewCourierRouting(
	vendorID kernel.UUID,
	companyID kernel.UUID,
	providerCode string,
	primaryCourier string,
	secondaryCourier string,
) (*CourierRouting, error) {
	r := &CourierRouting{
		secondaryCourier: secondaryCourier,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setVendorID(vendorID),
		r.setCompanyID(companyID),
		r.setProviderCode(providerCode),
		r.setPrimaryCourier(primaryCourier),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the CourierRouting was created through its constructor.
func (r *CourierRouting) Validate() error {
	if r == nil {
		return ErrCourierRoutingIsNotConstructed
	}
	return r.guard.Validate(ErrCourierRoutingIsNotConstructed)
}

// VendorID returns the vendor this routing applies to.
func (r *CourierRouting) VendorID() kernel.UUID { return r.vendorID }

// CompanyID returns the company this routing applies to.
func (r *CourierRouting) CompanyID() kernel.UUID { return r.companyID }

// ProviderCode returns the carrier-aggregator provider code.
func (r *CourierRouting) ProviderCode() string { return r.providerCode }

// PrimaryCourier returns the first-choice courier code.
func (r *CourierRouting) PrimaryCourier() string { return r.primaryCourier }

// SecondaryCourier returns the fallback courier code, empty when none is configured.
func (r *CourierRouting) SecondaryCourier() string { return r.secondaryCourier }

// HasSecondary reports whether a fallback courier is configured.
func (r *CourierRouting) HasSecondary() bool { return r.secondaryCourier != "" }

func (r *CourierRouting) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.vendorID = id
	return nil
}

func (r *CourierRouting) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.companyID = id
	return nil
}

func (r *CourierRouting) setProviderCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("provider code")
	}
	r.providerCode = code
	return nil
}

func (r *CourierRouting) setPrimaryCourier(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("primary courier")
	}
	r.primaryCourier = code
	return nil
}
