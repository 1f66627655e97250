package requisition

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrRequisitionIsNotConstructed is returned when a Requisition instance was not
// created through NewRequisition or RestoreRequisition.
var ErrRequisitionIsNotConstructed = errors.New(
	"Requisition must be created via NewRequisition or RestoreRequisition")

// LineItem is one product row of a requisition: what was ordered, in which
// size, how many, and at what unit price.
type LineItem struct {
	productID string
	size      string
	quantity  int
	price     float64
}

// NewLineItem creates a validated LineItem. Product id is required, quantity
// must be positive, and price cannot be negative.
func NewLineItem(productID, size string, quantity int, price float64) (LineItem, error) {
	if productID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item productID")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("line item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("line item price",
			fmt.Errorf("%f is negative", price))
	}

	return LineItem{productID: productID, size: size, quantity: quantity, price: price}, nil
}

// ProductID returns the product identifier.
func (li LineItem) ProductID() string { return li.productID }

// Size returns the ordered size variant.
func (li LineItem) Size() string { return li.size }

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int { return li.quantity }

// Price returns the unit price.
func (li LineItem) Price() float64 { return li.price }

// Requisition is a purchase requisition, or one vendor-specific slice of a
// requisition that was split across vendors. It is the aggregate root of the
// fulfillment workflow.
//
// Invariants:
//   - Must have valid id, company, and vendor identifiers
//   - Status is always a lattice member
//   - A requisition with a parent id is a split slice; the parent itself is
//     never displayed, only aggregated through its children
//   - Total cannot be negative
//   - OrderDate may be zero for legacy records; such requisitions sort last
type Requisition struct {
	id          kernel.UUID
	parentID    *kernel.UUID
	companyID   kernel.UUID
	vendorID    kernel.UUID
	prNumber    string
	poNumber    string
	items       []LineItem
	status      Status
	destination kernel.Address
	total       float64
	orderDate   time.Time

	guard guard.ConstructorGuard
}

// NewRequisition creates a freshly raised requisition in
// PendingSiteAdminApproval status.
//
// parentID is nil for a standalone requisition and set to the original
// requisition's id for a per-vendor split slice.
func NewRequisition(
	id kernel.UUID,
	parentID *kernel.UUID,
	companyID kernel.UUID,
	vendorID kernel.UUID,
	prNumber string,
	items []LineItem,
	destination kernel.Address,
	total float64,
	orderDate time.Time,
) (*Requisition, error) {
	return RestoreRequisition(
		id, parentID, companyID, vendorID, prNumber, "",
		items, PendingSiteAdminApproval, destination, total, orderDate,
	)
}

// RestoreRequisition reconstructs a Requisition from persistent storage,
// preserving its workflow status and purchase-order linkage. The restored
// aggregate behaves identically to one created through normal domain
// operations.
func RestoreRequisition(
	id kernel.UUID,
	parentID *kernel.UUID,
	companyID kernel.UUID,
	vendorID kernel.UUID,
	prNumber string,
	poNumber string,
	items []LineItem,
	status Status,
	destination kernel.Address,
	total float64,
	orderDate time.Time,
) (*Requisition, error) {
	r := &Requisition{
		poNumber:  poNumber,
		orderDate: orderDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setParentID(parentID),
		r.setCompanyID(companyID),
		r.setVendorID(vendorID),
		r.setPrNumber(prNumber),
		r.setItems(items),
		r.setStatus(status),
		r.setDestination(destination),
		r.setTotal(total),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Requisition was created through a constructor.
func (r *Requisition) Validate() error {
	if r == nil {
		return ErrRequisitionIsNotConstructed
	}
	return r.guard.Validate(ErrRequisitionIsNotConstructed)
}

// IsEqual compares two requisitions by their unique identifiers.
func (r *Requisition) IsEqual(other *Requisition) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the requisition's unique identifier.
func (r *Requisition) ID() kernel.UUID { return r.id }

// ParentID returns the parent requisition id for a split slice, or nil for a
// standalone requisition.
func (r *Requisition) ParentID() *kernel.UUID { return r.parentID }

// CompanyID returns the owning company's identifier.
func (r *Requisition) CompanyID() kernel.UUID { return r.companyID }

// VendorID returns the fulfilling vendor's identifier.
func (r *Requisition) VendorID() kernel.UUID { return r.vendorID }

// PrNumber returns the human-facing purchase requisition number.
func (r *Requisition) PrNumber() string { return r.prNumber }

// PoNumber returns the linked purchase-order number, empty until linked.
func (r *Requisition) PoNumber() string { return r.poNumber }

// Items returns the requisition's line items in order.
func (r *Requisition) Items() []LineItem { return r.items }

// Status returns the current workflow status.
func (r *Requisition) Status() Status { return r.status }

// Destination returns the delivery destination address.
func (r *Requisition) Destination() kernel.Address { return r.destination }

// Total returns the monetary total of the requisition.
func (r *Requisition) Total() float64 { return r.total }

// OrderDate returns the creation timestamp. A zero time means the record
// predates date capture.
func (r *Requisition) OrderDate() time.Time { return r.orderDate }

// Ship moves the requisition into InShipment. Called exactly once per dispatch
// event, after a shipment record has been secured.
func (r *Requisition) Ship() error {
	newStatus, err := r.status.Ship()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Requisition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Requisition) setParentID(parentID *kernel.UUID) error {
	if parentID == nil {
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(r.id) {
		return errs.NewValueIsInvalidErrorWithCause("parentOrderId",
			errors.New("requisition cannot be its own parent"))
	}
	r.parentID = parentID
	return nil
}

func (r *Requisition) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	r.companyID = companyID
	return nil
}

func (r *Requisition) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	r.vendorID = vendorID
	return nil
}

func (r *Requisition) setPrNumber(prNumber string) error {
	if prNumber == "" {
		return errs.NewValueIsRequiredError("prNumber")
	}
	r.prNumber = prNumber
	return nil
}

func (r *Requisition) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	r.items = items
	return nil
}

func (r *Requisition) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Requisition) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Requisition) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%f is negative", total))
	}
	r.total = total
	return nil
}
