package commands

import (
	"context"
)

// AdvanceShipmentStatusCommandHandler applies a monotonic status transition to
// a shipment. The state machine in the shipment aggregate rejects backward or
// skipping moves, so an out-of-date tracking report cannot regress a shipment.
type AdvanceShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAdvanceShipmentStatusCommandHandler creates a handler for shipment status advancement.
func NewAdvanceShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
) AdvanceShipmentStatusCommandHandler {
	return AdvanceShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status advancement command.
func (h *AdvanceShipmentStatusCommandHandler) Handle(
	ctx context.Context, cmd AdvanceShipmentStatusCommand,
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
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.AdvanceTo(cmd.Next()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
