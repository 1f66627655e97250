package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// ensureNoOpenShipment enforces the at-most-one-open-shipment invariant for a
// requisition-vendor pair. Both creation handlers call it before any external
// call or write.
func ensureNoOpenShipment(
	ctx context.Context,
	repo ports.ShipmentRepository,
	requisitionID, vendorID kernel.UUID,
) error {
	existing, err := repo.GetOpenForRequisition(ctx, requisitionID, vendorID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if existing != nil {
		return errs.NewConflictError("open shipment", requisitionID.String())
	}
	return nil
}

// resolveParcel loads the package template when one is referenced and performs
// dimension resolution; a supplied template always wins over custom dimensions.
func resolveParcel(
	ctx context.Context,
	logistics ports.LogisticsRepository,
	templateID *kernel.UUID,
	custom *shipment.Dimensions,
) (shipment.Parcel, error) {
	if templateID == nil {
		return shipment.ResolveParcel(nil, custom)
	}

	template, err := logistics.GetPackageTemplate(ctx, *templateID)
	if err != nil {
		return shipment.Parcel{}, err
	}
	return shipment.ResolveParcel(template, nil)
}

// invalidateListing drops the company's cached order listings after a committed
// write. Best effort: every entry also expires by TTL, so a failed or skipped
// invalidation only delays freshness.
func invalidateListing(ctx context.Context, cache ports.OrderListCache, companyID kernel.UUID) {
	if cache == nil {
		return
	}
	_ = cache.Invalidate(ctx, companyID.String())
}
