package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/model/shipping"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// CreateAPIShipmentCommandHandler issues a shipment through the carrier
// aggregator. The flow is strictly ordered: duplicate check, configuration
// resolution, serviceability fallback, aggregator call, and only then any
// write. A failed aggregator call leaves nothing persisted, so the caller may
// retry the identical request safely.
type CreateAPIShipmentCommandHandler struct {
	uowFactory         ShipmentUoWFactory
	aggregator         ports.AggregatorClient
	cache              ports.OrderListCache
	contextResolver    services.ContextResolver
	integrationEnabled bool
}

// NewCreateAPIShipmentCommandHandler creates a handler for aggregator shipment
// creation. integrationEnabled is the system-wide shipping-integration flag;
// when disabled every automatic request is rejected before any external call.
// The listing cache is optional; pass nil to rely on TTL expiry alone.
func NewCreateAPIShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	aggregator ports.AggregatorClient,
	cache ports.OrderListCache,
	integrationEnabled bool,
) CreateAPIShipmentCommandHandler {
	return CreateAPIShipmentCommandHandler{
		uowFactory:         uowFactory,
		aggregator:         aggregator,
		cache:              cache,
		contextResolver:    services.NewContextResolver(),
		integrationEnabled: integrationEnabled,
	}
}

// Handle processes the aggregator shipment creation command.
func (h *CreateAPIShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateAPIShipmentCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	if err := ensureNoOpenShipment(ctx, shipmentRepo, cmd.RequisitionID(), cmd.VendorID()); err != nil {
		return err
	}

	requisitionRepo := uow.RequisitionRepository()
	requisition, err := requisitionRepo.Get(ctx, cmd.RequisitionID())
	if err != nil {
		return err
	}

	// A requisition that cannot enter shipment must be rejected here, before
	// the aggregator call; booking first would orphan a shipment at the
	// carrier when the local transition fails.
	if err = requisition.Status().ValidateShip(); err != nil {
		return err
	}

	parcel, err := resolveParcel(
		ctx, uow.LogisticsRepository(), cmd.PackageTemplateID(), cmd.CustomDimensions())
	if err != nil {
		return err
	}

	shippingCtx, err := h.resolveShippingContext(
		ctx, uow.LogisticsRepository(), cmd.VendorID(), requisition)
	if err != nil {
		return err
	}
	if !shippingCtx.HasRouting() {
		return errs.NewConfigurationError(
			"no courier routing configured for automatic shipping")
	}

	selector, err := services.NewCourierSelector(h.aggregator)
	if err != nil {
		return err
	}
	selection, err := selector.Select(ctx, shippingCtx, parcel.ChargeableWeightKg())
	if err != nil {
		return err
	}

	created, err := h.aggregator.CreateShipment(ctx, ports.CreateShipmentRequest{
		ProviderCode:       shippingCtx.ProviderCode(),
		CourierCode:        selection.CourierCode,
		SourcePincode:      shippingCtx.SourcePincode(),
		DestinationPincode: shippingCtx.DestinationPincode(),
		ChargeableWeightKg: parcel.ChargeableWeightKg(),
		DispatchDate:       cmd.DispatchDate(),
		RequisitionID:      cmd.RequisitionID(),
	})
	if err != nil {
		return errs.NewDependencyError("carrier aggregator", err)
	}

	newShipment, err := shipment.NewAPIShipment(
		cmd.ShipmentID(),
		cmd.RequisitionID(),
		cmd.VendorID(),
		parcel,
		shippingCtx.ProviderCode(),
		selection.CourierCode,
		created.TrackingRef,
		created.RawResponse,
		cmd.DispatchDate(),
	)
	if err != nil {
		return err
	}

	if err = requisition.Ship(); err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return err
	}

	if err = requisitionRepo.Update(ctx, requisition); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateListing(ctx, h.cache, requisition.CompanyID())
	return nil
}

// resolveShippingContext gathers the company's logistics configuration and
// derives the shipping context for the requisition's destination.
func (h *CreateAPIShipmentCommandHandler) resolveShippingContext(
	ctx context.Context,
	logistics ports.LogisticsRepository,
	vendorID kernel.UUID,
	req *requisition.Requisition,
) (*shipping.Context, error) {
	companyMode, err := logistics.GetCompanyShippingMode(ctx, req.CompanyID())
	if err != nil {
		return nil, err
	}

	routing, err := logistics.GetCourierRouting(ctx, vendorID, req.CompanyID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	warehouses, err := logistics.GetWarehouses(ctx, req.CompanyID())
	if err != nil {
		return nil, err
	}

	shippingCtx, err := h.contextResolver.Resolve(
		h.integrationEnabled, companyMode, routing, warehouses, req.Destination().Pincode())
	if err != nil {
		return nil, err
	}
	if shippingCtx.Mode() != shipping.Automatic {
		return nil, errs.NewConfigurationError(
			"shipping integration is disabled; use manual shipment entry")
	}

	return shippingCtx, nil
}
