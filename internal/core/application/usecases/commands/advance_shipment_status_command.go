package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/pkg/guard"
)

var ErrAdvanceShipmentStatusCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusCommand must be created via NewAdvanceShipmentStatusCommand constructor",
)

// AdvanceShipmentStatusCommand represents a request to move a shipment to its
// next status. Used by the tracking job when the carrier reports progress and
// by operators correcting a manual shipment. Transitions are monotonic; a
// shipment never moves backward.
type AdvanceShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	next       shipment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentStatusCommand creates a command to advance a shipment's status.
func NewAdvanceShipmentStatusCommand(
	shipmentID kernel.UUID, next shipment.Status,
) (AdvanceShipmentStatusCommand, error) {
	cmd := AdvanceShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceShipmentStatusCommandIsNotConstructed if validation fails.
func (c AdvanceShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment to advance.
func (c AdvanceShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Next returns the requested status.
func (c AdvanceShipmentStatusCommand) Next() shipment.Status { return c.next }

func (c *AdvanceShipmentStatusCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AdvanceShipmentStatusCommand) setNext(next shipment.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
