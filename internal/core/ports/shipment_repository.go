package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetOpenForRequisition retrieves the non-terminal shipment for a
	// requisition-vendor pair, if one exists. Returns an ObjectNotFoundError
	// when the pair has no open shipment; at most one can exist at a time.
	GetOpenForRequisition(
		ctx context.Context, requisitionID, vendorID kernel.UUID,
	) (*shipment.Shipment, error)

	// GetAllOpenAPIShipments retrieves every aggregator-issued shipment that
	// has not reached a terminal status. The tracking job polls these.
	GetAllOpenAPIShipments(ctx context.Context) ([]*shipment.Shipment, error)
}
