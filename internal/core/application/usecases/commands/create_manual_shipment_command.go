package commands

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateManualShipmentCommandIsNotConstructed = errors.New(
	"CreateManualShipmentCommand must be created via NewCreateManualShipmentCommand constructor",
)

// CreateManualShipmentCommand represents an operator-entered dispatch for a
// requisition: the package (template reference or custom dimensions), the mode
// of transport, an optional AWB number, and the confirmed destination address.
//
// Example:
//
//	cmd, err := NewCreateManualShipmentCommand(
//	    kernel.NewUUID(), requisitionID, vendorID,
//	    &templateID, nil, shipment.Courier, "AWB-123456", destination, dispatchDate)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateManualShipmentCommandHandler(uowFactory, cache)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateManualShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	requisitionID     kernel.UUID
	vendorID          kernel.UUID
	packageTemplateID *kernel.UUID
	customDimensions  *shipment.Dimensions
	transport         shipment.TransportMode
	awb               string
	destination       kernel.Address
	dispatchDate      time.Time

	guard guard.ConstructorGuard
}

// NewCreateManualShipmentCommand creates a command to record a manual shipment.
// Either a package template id or complete custom dimensions must be supplied;
// the AWB number is optional. The destination address must be complete, each
// field having been validated when it was constructed.
func NewCreateManualShipmentCommand(
	shipmentID kernel.UUID,
	requisitionID kernel.UUID,
	vendorID kernel.UUID,
	packageTemplateID *kernel.UUID,
	customDimensions *shipment.Dimensions,
	transport shipment.TransportMode,
	awb string,
	destination kernel.Address,
	dispatchDate time.Time,
) (CreateManualShipmentCommand, error) {
	cmd := CreateManualShipmentCommand{
		awb:   awb,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setRequisitionID(requisitionID),
		cmd.setVendorID(vendorID),
		cmd.setPackage(packageTemplateID, customDimensions),
		cmd.setTransport(transport),
		cmd.setDestination(destination),
		cmd.setDispatchDate(dispatchDate),
	); err != nil {
		return CreateManualShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateManualShipmentCommandIsNotConstructed if validation fails.
func (c CreateManualShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the shipment being created.
func (c CreateManualShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// RequisitionID returns the requisition being dispatched.
func (c CreateManualShipmentCommand) RequisitionID() kernel.UUID { return c.requisitionID }

// VendorID returns the dispatching vendor.
func (c CreateManualShipmentCommand) VendorID() kernel.UUID { return c.vendorID }

// PackageTemplateID returns the selected template id, nil for custom dimensions.
func (c CreateManualShipmentCommand) PackageTemplateID() *kernel.UUID {
	return c.packageTemplateID
}

// CustomDimensions returns the operator-entered dimensions, nil when a
// template is selected.
func (c CreateManualShipmentCommand) CustomDimensions() *shipment.Dimensions {
	return c.customDimensions
}

// Transport returns the mode of transport.
func (c CreateManualShipmentCommand) Transport() shipment.TransportMode { return c.transport }

// AWB returns the operator-entered AWB/docket number, possibly empty.
func (c CreateManualShipmentCommand) AWB() string { return c.awb }

// Destination returns the confirmed delivery address.
func (c CreateManualShipmentCommand) Destination() kernel.Address { return c.destination }

// DispatchDate returns the dispatch date.
func (c CreateManualShipmentCommand) DispatchDate() time.Time { return c.dispatchDate }

func (c *CreateManualShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateManualShipmentCommand) setRequisitionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requisitionID = id
	return nil
}

func (c *CreateManualShipmentCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *CreateManualShipmentCommand) setPackage(
	templateID *kernel.UUID, custom *shipment.Dimensions,
) error {
	if templateID != nil {
		if err := templateID.Validate(); err != nil {
			return err
		}
		c.packageTemplateID = templateID
		return nil
	}
	if custom == nil {
		return errs.NewValueIsRequiredError("package template or custom dimensions")
	}
	if err := custom.Validate(); err != nil {
		return err
	}
	c.customDimensions = custom
	return nil
}

func (c *CreateManualShipmentCommand) setTransport(transport shipment.TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}

func (c *CreateManualShipmentCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateManualShipmentCommand) setDispatchDate(dispatchDate time.Time) error {
	if dispatchDate.IsZero() {
		return errs.NewValueIsRequiredError("dispatch date")
	}
	c.dispatchDate = dispatchDate
	return nil
}
