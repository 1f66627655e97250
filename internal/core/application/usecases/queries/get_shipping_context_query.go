package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrGetShippingContextQueryIsNotConstructed = errors.New(
	"GetShippingContextQuery must be created via NewGetShippingContextQuery constructor",
)

// GetShippingContextQuery resolves how a shipment for a (company, vendor,
// destination) triple would be created: effective mode, courier routing, and
// source warehouse. The UI calls it before offering the dispatch form so the
// vendor sees manual entry when automatic shipping is not possible.
type GetShippingContextQuery struct { //nolint:recvcheck //using for validation
	companyID          kernel.UUID
	vendorID           kernel.UUID
	destinationPincode kernel.Pincode

	guard guard.ConstructorGuard
}

// NewGetShippingContextQuery creates a shipping-context query.
func NewGetShippingContextQuery(
	companyID, vendorID kernel.UUID, destinationPincode kernel.Pincode,
) (GetShippingContextQuery, error) {
	query := GetShippingContextQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCompanyID(companyID),
		query.setVendorID(vendorID),
		query.setDestinationPincode(destinationPincode),
	); err != nil {
		return GetShippingContextQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShippingContextQueryIsNotConstructed if validation fails.
func (q GetShippingContextQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingContextQueryIsNotConstructed)
}

// CompanyID returns the ordering company.
func (q GetShippingContextQuery) CompanyID() kernel.UUID { return q.companyID }

// VendorID returns the dispatching vendor.
func (q GetShippingContextQuery) VendorID() kernel.UUID { return q.vendorID }

// DestinationPincode returns the delivery pincode.
func (q GetShippingContextQuery) DestinationPincode() kernel.Pincode {
	return q.destinationPincode
}

func (q *GetShippingContextQuery) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	q.companyID = companyID
	return nil
}

func (q *GetShippingContextQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	q.vendorID = vendorID
	return nil
}

func (q *GetShippingContextQuery) setDestinationPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	q.destinationPincode = pincode
	return nil
}

// GetShippingContextQueryResponse is the resolved shipping context rendered
// for the dispatch form.
type GetShippingContextQueryResponse struct {
	ShippingMode       string `json:"shippingMode"`
	HasRouting         bool   `json:"hasRouting"`
	ProviderCode       string `json:"providerCode,omitempty"`
	PrimaryCourier     string `json:"primaryCourier,omitempty"`
	SecondaryCourier   string `json:"secondaryCourier,omitempty"`
	SourcePincode      string `json:"sourcePincode,omitempty"`
	DestinationPincode string `json:"destinationPincode"`
}
