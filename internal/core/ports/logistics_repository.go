package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/model/shipping"
)

// LogisticsRepository defines the read contract for administrator-maintained
// shipping configuration: courier routings, warehouses, package templates, and
// the per-company shipping mode. The workflow engine reads these, never writes.
type LogisticsRepository interface {
	// GetCourierRouting retrieves the courier routing for a (vendor, company)
	// pair. Returns an ObjectNotFoundError when none is configured.
	GetCourierRouting(
		ctx context.Context, vendorID, companyID kernel.UUID,
	) (*shipping.CourierRouting, error)

	// GetWarehouses retrieves every warehouse of a company, active or not.
	GetWarehouses(ctx context.Context, companyID kernel.UUID) ([]*shipping.Warehouse, error)

	// GetPackageTemplate retrieves a reusable package template by identifier.
	GetPackageTemplate(ctx context.Context, id kernel.UUID) (*shipment.PackageTemplate, error)

	// GetCompanyShippingMode retrieves the company's configured shipping mode.
	// Companies without an explicit setting default to manual.
	GetCompanyShippingMode(ctx context.Context, companyID kernel.UUID) (shipping.Mode, error)
}
