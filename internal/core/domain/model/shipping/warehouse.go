package shipping

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse was not created via
// NewWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse")

// Warehouse is a company dispatch location. The primary active warehouse is the
// preferred shipment source; any active warehouse can stand in when no primary
// is flagged.
type Warehouse struct {
	id        kernel.UUID
	companyID kernel.UUID
	name      string
	pincode   kernel.Pincode
	isPrimary bool
	isActive  bool

	guard guard.ConstructorGuard
}

// NewWarehouse creates a validated Warehouse.
func NewWarehouse(
	id kernel.UUID,
	companyID kernel.UUID,
	name string,
	pincode kernel.Pincode,
	isPrimary bool,
	isActive bool,
) (*Warehouse, error) {
	w := &Warehouse{
		isPrimary: isPrimary,
		isActive:  isActive,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setCompanyID(companyID),
		w.setName(name),
		w.setPincode(pincode),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Warehouse was created through its constructor.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() kernel.UUID { return w.id }

// CompanyID returns the owning company's identifier.
func (w *Warehouse) CompanyID() kernel.UUID { return w.companyID }

// Name returns the warehouse display name.
func (w *Warehouse) Name() string { return w.name }

// Pincode returns the warehouse pincode, the shipment source for routing.
func (w *Warehouse) Pincode() kernel.Pincode { return w.pincode }

// IsPrimary reports whether this is the company's preferred dispatch warehouse.
func (w *Warehouse) IsPrimary() bool { return w.isPrimary }

// IsActive reports whether the warehouse may dispatch shipments.
func (w *Warehouse) IsActive() bool { return w.isActive }

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.companyID = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}
	w.pincode = pincode
	return nil
}
