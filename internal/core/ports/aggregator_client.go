package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// ServiceabilityResult is the aggregator's answer to whether a courier can
// deliver between two pincodes at a given weight.
type ServiceabilityResult struct {
	Serviceable   bool
	Cost          float64
	EstimatedDays string
	Message       string
}

// CreateShipmentRequest carries everything the aggregator needs to issue a
// shipment with a specific courier.
type CreateShipmentRequest struct {
	ProviderCode       string
	CourierCode        string
	SourcePincode      kernel.Pincode
	DestinationPincode kernel.Pincode
	ChargeableWeightKg float64
	DispatchDate       time.Time
	RequisitionID      kernel.UUID
}

// CreateShipmentResult is the aggregator's confirmation of an issued shipment.
// RawResponse is the provider's response body verbatim, kept for audit and
// never interpreted beyond the tracking reference.
type CreateShipmentResult struct {
	TrackingRef string
	RawResponse string
}

// TrackingResult is the aggregator's report of a shipment's courier progress,
// already normalized to the provider-agnostic status literals.
type TrackingResult struct {
	Status  string
	Message string
}

// AggregatorClient is the narrow capability interface over the external
// carrier-aggregator service. Implementations perform blocking network I/O
// with a bounded timeout; callers treat any error as a dependency failure and
// must not have committed state before the call.
type AggregatorClient interface {
	// CheckServiceability asks whether the courier serves the route at the
	// given chargeable weight.
	CheckServiceability(
		ctx context.Context,
		providerCode string,
		source, destination kernel.Pincode,
		courierCode string,
		weightKg float64,
	) (ServiceabilityResult, error)

	// CreateShipment issues a shipment through the aggregator and returns the
	// provider's tracking reference and raw response.
	CreateShipment(ctx context.Context, req CreateShipmentRequest) (CreateShipmentResult, error)

	// TrackShipment fetches the current courier status for a tracking reference.
	TrackShipment(
		ctx context.Context, providerCode, trackingRef string,
	) (TrackingResult, error)
}
