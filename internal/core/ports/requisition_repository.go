// Package ports defines the interfaces the fulfillment core consumes:
// repositories for its aggregates, the carrier-aggregator capability, and the
// read-side listing cache. These contracts keep the domain independent of
// Postgres, Redis, and the aggregator's HTTP API.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
)

// RequisitionRepository defines the persistence contract for requisition
// aggregates, the per-vendor orders the aggregator folds into logical orders.
type RequisitionRepository interface {
	// Add persists a new requisition aggregate to storage.
	Add(ctx context.Context, aggregate *requisition.Requisition) error

	// Update persists changes to an existing requisition aggregate.
	Update(ctx context.Context, aggregate *requisition.Requisition) error

	// Get retrieves a requisition aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*requisition.Requisition, error)

	// GetAllForCompany retrieves every requisition belonging to a company,
	// including split children, in no guaranteed order. The caller groups and
	// sorts them.
	GetAllForCompany(ctx context.Context, companyID kernel.UUID) ([]*requisition.Requisition, error)

	// GetAllForVendor retrieves every requisition assigned to a vendor.
	GetAllForVendor(ctx context.Context, vendorID kernel.UUID) ([]*requisition.Requisition, error)
}
