package commands

import (
	"context"

	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/ports"
)

// CreateManualShipmentCommandHandler records an operator-entered shipment and
// advances the requisition toward in-shipment in one transaction. No external
// call is made: manual creation is a pure, immediate state transition.
type CreateManualShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	cache      ports.OrderListCache
}

// NewCreateManualShipmentCommandHandler creates a handler for manual shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence. The listing
// cache is optional; pass nil to rely on TTL expiry alone.
func NewCreateManualShipmentCommandHandler(
	uowFactory ShipmentUoWFactory, cache ports.OrderListCache,
) CreateManualShipmentCommandHandler {
	return CreateManualShipmentCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the manual shipment creation command.
//
// At most one open shipment may exist per requisition-vendor pair: a second
// creation attempt returns a ConflictError instead of a duplicate. The
// shipment record and the requisition status change commit together or not
// at all.
func (h *CreateManualShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateManualShipmentCommand,
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

	parcel, err := resolveParcel(
		ctx, uow.LogisticsRepository(), cmd.PackageTemplateID(), cmd.CustomDimensions())
	if err != nil {
		return err
	}

	requisitionRepo := uow.RequisitionRepository()
	requisition, err := requisitionRepo.Get(ctx, cmd.RequisitionID())
	if err != nil {
		return err
	}

	newShipment, err := shipment.NewManualShipment(
		cmd.ShipmentID(),
		cmd.RequisitionID(),
		cmd.VendorID(),
		parcel,
		cmd.Transport(),
		cmd.AWB(),
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
