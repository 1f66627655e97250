package services

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipping"
	"orderflow/internal/pkg/errs"
)

// ContextResolver is a domain service that decides how a shipment for a
// (company, vendor, destination) triple may be created. It is pure: every
// input is pre-fetched by the caller, so the resolver itself performs no I/O.
type ContextResolver struct{}

// NewContextResolver creates a new ContextResolver instance.
func NewContextResolver() ContextResolver {
	return ContextResolver{}
}

// Resolve derives the shipping context.
//
// Rules:
//   - When the system-wide integration flag is disabled, the mode is manual
//     regardless of the company setting. The global kill switch dominates.
//   - In automatic mode the source pincode comes from the company's primary
//     active warehouse, or the first active warehouse when no primary is
//     flagged. No active warehouse is a hard failure for automatic mode.
//   - Routing fields are present only when a courier routing exists for the
//     (vendor, company) pair; without one the context carries hasRouting=false
//     and the caller must fall back to manual entry.
func (r ContextResolver) Resolve(
	globalEnabled bool,
	companyMode shipping.Mode,
	routing *shipping.CourierRouting,
	warehouses []*shipping.Warehouse,
	destination kernel.Pincode,
) (*shipping.Context, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	if !globalEnabled || companyMode != shipping.Automatic {
		return shipping.NewManualContext(destination)
	}

	warehouse := selectWarehouse(warehouses)
	if warehouse == nil {
		return nil, errs.NewConfigurationError(
			"no active warehouse configured for automatic shipping")
	}

	return shipping.NewAutomaticContext(routing, warehouse.Pincode(), destination)
}

// selectWarehouse prefers the primary active warehouse, then the first active one.
func selectWarehouse(warehouses []*shipping.Warehouse) *shipping.Warehouse {
	var firstActive *shipping.Warehouse
	for _, w := range warehouses {
		if w == nil || w.Validate() != nil || !w.IsActive() {
			continue
		}
		if w.IsPrimary() {
			return w
		}
		if firstActive == nil {
			firstActive = w
		}
	}
	return firstActive
}
