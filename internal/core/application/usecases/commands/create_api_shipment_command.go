package commands

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateAPIShipmentCommandIsNotConstructed = errors.New(
	"CreateAPIShipmentCommand must be created via NewCreateAPIShipmentCommand constructor",
)

// CreateAPIShipmentCommand represents a request to issue a shipment through
// the carrier-aggregator integration. The courier is not chosen by the caller:
// the handler resolves the company's shipping context and runs the
// serviceability fallback protocol.
//
// Example:
//
//	cmd, err := NewCreateAPIShipmentCommand(
//	    kernel.NewUUID(), requisitionID, vendorID, &templateID, nil, dispatchDate)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateAPIShipmentCommandHandler(uowFactory, aggregator, cache, true)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to issue shipment: %w", err)
//	}
type CreateAPIShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.UUID
	requisitionID     kernel.UUID
	vendorID          kernel.UUID
	packageTemplateID *kernel.UUID
	customDimensions  *shipment.Dimensions
	dispatchDate      time.Time

	guard guard.ConstructorGuard
}

// NewCreateAPIShipmentCommand creates a command to issue an aggregator shipment.
// Either a package template id or complete custom dimensions must be supplied.
func NewCreateAPIShipmentCommand(
	shipmentID kernel.UUID,
	requisitionID kernel.UUID,
	vendorID kernel.UUID,
	packageTemplateID *kernel.UUID,
	customDimensions *shipment.Dimensions,
	dispatchDate time.Time,
) (CreateAPIShipmentCommand, error) {
	cmd := CreateAPIShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setRequisitionID(requisitionID),
		cmd.setVendorID(vendorID),
		cmd.setPackage(packageTemplateID, customDimensions),
		cmd.setDispatchDate(dispatchDate),
	); err != nil {
		return CreateAPIShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAPIShipmentCommandIsNotConstructed if validation fails.
func (c CreateAPIShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAPIShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the shipment being created.
func (c CreateAPIShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// RequisitionID returns the requisition being dispatched.
func (c CreateAPIShipmentCommand) RequisitionID() kernel.UUID { return c.requisitionID }

// VendorID returns the dispatching vendor.
func (c CreateAPIShipmentCommand) VendorID() kernel.UUID { return c.vendorID }

// PackageTemplateID returns the selected template id, nil for custom dimensions.
func (c CreateAPIShipmentCommand) PackageTemplateID() *kernel.UUID {
	return c.packageTemplateID
}

// CustomDimensions returns the operator-entered dimensions, nil when a
// template is selected.
func (c CreateAPIShipmentCommand) CustomDimensions() *shipment.Dimensions {
	return c.customDimensions
}

// DispatchDate returns the requested dispatch date.
func (c CreateAPIShipmentCommand) DispatchDate() time.Time { return c.dispatchDate }

func (c *CreateAPIShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateAPIShipmentCommand) setRequisitionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requisitionID = id
	return nil
}

func (c *CreateAPIShipmentCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *CreateAPIShipmentCommand) setPackage(
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

func (c *CreateAPIShipmentCommand) setDispatchDate(dispatchDate time.Time) error {
	if dispatchDate.IsZero() {
		return errs.NewValueIsRequiredError("dispatch date")
	}
	c.dispatchDate = dispatchDate
	return nil
}
