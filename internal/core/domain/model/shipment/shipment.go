package shipment

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through one of its constructors.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewManualShipment, NewAPIShipment, or RestoreShipment")

// Shipment is one dispatch event for a requisition-vendor pair. At most one
// open (non-terminal) shipment may exist per pair; once the carrier confirms
// pickup the record is immutable apart from status advancement.
//
// Manual shipments carry an operator-entered AWB/docket number and a mode of
// transport. API shipments carry the provider code, selected courier, the
// provider-issued tracking reference, and the raw provider response kept
// verbatim for audit and never interpreted beyond status.
type Shipment struct {
	id            kernel.UUID
	requisitionID kernel.UUID
	vendorID      kernel.UUID
	mode          Mode
	parcel        Parcel
	status        Status
	dispatchDate  time.Time

	// manual mode
	transport TransportMode
	awb       string

	// api mode
	providerCode string
	courierCode  string
	trackingRef  string
	rawResponse  string

	guard guard.ConstructorGuard
}

// NewManualShipment records an operator-entered dispatch. The AWB number is
// optional (hand deliveries have none); the mode of transport is not.
func NewManualShipment(
	id kernel.UUID,
	requisitionID kernel.UUID,
	vendorID kernel.UUID,
	parcel Parcel,
	transport TransportMode,
	awb string,
	dispatchDate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		mode:         Manual,
		parcel:       parcel,
		status:       Created,
		awb:          awb,
		dispatchDate: dispatchDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setRequisitionID(requisitionID),
		s.setVendorID(vendorID),
		s.setTransport(transport),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// NewAPIShipment records a dispatch issued through the carrier aggregator.
// The tracking reference and raw response come straight from the provider.
func NewAPIShipment(
	id kernel.UUID,
	requisitionID kernel.UUID,
	vendorID kernel.UUID,
	parcel Parcel,
	providerCode string,
	courierCode string,
	trackingRef string,
	rawResponse string,
	dispatchDate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		mode:         API,
		parcel:       parcel,
		status:       Created,
		rawResponse:  rawResponse,
		dispatchDate: dispatchDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setRequisitionID(requisitionID),
		s.setVendorID(vendorID),
		s.setProviderCode(providerCode),
		s.setCourierCode(courierCode),
		s.setTrackingRef(trackingRef),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistent storage.
func RestoreShipment(
	id kernel.UUID,
	requisitionID kernel.UUID,
	vendorID kernel.UUID,
	mode Mode,
	parcel Parcel,
	status Status,
	transport TransportMode,
	awb string,
	providerCode string,
	courierCode string,
	trackingRef string,
	rawResponse string,
	dispatchDate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		parcel:       parcel,
		awb:          awb,
		providerCode: providerCode,
		courierCode:  courierCode,
		trackingRef:  trackingRef,
		rawResponse:  rawResponse,
		dispatchDate: dispatchDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setRequisitionID(requisitionID),
		s.setVendorID(vendorID),
		s.setMode(mode),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	if mode == Manual {
		if err := s.setTransport(transport); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// RequisitionID returns the owning requisition's identifier.
func (s *Shipment) RequisitionID() kernel.UUID { return s.requisitionID }

// VendorID returns the dispatching vendor's identifier.
func (s *Shipment) VendorID() kernel.UUID { return s.vendorID }

// Mode returns Manual or API.
func (s *Shipment) Mode() Mode { return s.mode }

// Parcel returns the resolved physical package.
func (s *Shipment) Parcel() Parcel { return s.parcel }

// Status returns the current shipment status.
func (s *Shipment) Status() Status { return s.status }

// Transport returns the mode of transport for a manual shipment.
func (s *Shipment) Transport() TransportMode { return s.transport }

// AWB returns the operator-entered AWB/docket number, empty when absent.
func (s *Shipment) AWB() string { return s.awb }

// ProviderCode returns the carrier-aggregator provider for an API shipment.
func (s *Shipment) ProviderCode() string { return s.providerCode }

// CourierCode returns the selected courier for an API shipment.
func (s *Shipment) CourierCode() string { return s.courierCode }

// TrackingRef returns the provider-issued tracking reference.
func (s *Shipment) TrackingRef() string { return s.trackingRef }

// RawResponse returns the provider's response verbatim, kept for audit.
func (s *Shipment) RawResponse() string { return s.rawResponse }

// DispatchDate returns the dispatch date.
func (s *Shipment) DispatchDate() time.Time { return s.dispatchDate }

// IsOpen reports whether the shipment still blocks creation of another
// shipment for the same requisition-vendor pair.
func (s *Shipment) IsOpen() bool {
	return !s.status.IsTerminal()
}

// AdvanceTo moves the shipment status forward along the monotonic state
// machine. Backward moves and transitions out of terminal states are rejected.
func (s *Shipment) AdvanceTo(next Status) error {
	newStatus, err := s.status.Advance(next)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setRequisitionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.requisitionID = id
	return nil
}

func (s *Shipment) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.vendorID = id
	return nil
}

func (s *Shipment) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	s.mode = mode
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setTransport(transport TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	s.transport = transport
	return nil
}

func (s *Shipment) setProviderCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("provider code")
	}
	s.providerCode = code
	return nil
}

func (s *Shipment) setCourierCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("courier code")
	}
	s.courierCode = code
	return nil
}

func (s *Shipment) setTrackingRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("tracking reference")
	}
	s.trackingRef = ref
	return nil
}
