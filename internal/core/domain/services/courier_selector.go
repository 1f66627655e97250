package services

import (
	"context"

	"orderflow/internal/core/domain/model/shipping"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// CourierSelection is the outcome of a successful serviceability check: the
// courier to ship with and the aggregator's quote for it.
type CourierSelection struct {
	CourierCode string
	Result      ports.ServiceabilityResult
}

// CourierSelector is a domain service implementing the serviceability fallback
// protocol over the aggregator capability. The primary courier is checked
// first; the secondary is consulted only when the primary is unserviceable or
// the check itself fails, and never concurrently. A usable primary is always
// preferred so cost variance stays low.
type CourierSelector struct {
	client ports.AggregatorClient
}

// NewCourierSelector creates a CourierSelector over the aggregator capability.
func NewCourierSelector(client ports.AggregatorClient) (*CourierSelector, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &CourierSelector{client: client}, nil
}

// Select picks a serviceable courier for the routed context at the given
// chargeable weight.
//
// Returns UnserviceableRouteError when every configured courier is
// unserviceable: a terminal cannot-auto-ship state the caller must surface as
// a visible manual fallback, never a silent failure. The context must carry a
// routing; selecting without one is a configuration error.
func (s *CourierSelector) Select(
	ctx context.Context, shippingCtx *shipping.Context, weightKg float64,
) (CourierSelection, error) {
	if err := shippingCtx.Validate(); err != nil {
		return CourierSelection{}, err
	}
	if !shippingCtx.HasRouting() {
		return CourierSelection{}, errs.NewConfigurationError(
			"no courier routing configured for automatic shipping")
	}

	var (
		checked   []string
		lastCause error
	)

	couriers := []string{shippingCtx.PrimaryCourier()}
	if shippingCtx.HasSecondaryCourier() {
		couriers = append(couriers, shippingCtx.SecondaryCourier())
	}

	for _, courierCode := range couriers {
		result, err := s.client.CheckServiceability(
			ctx,
			shippingCtx.ProviderCode(),
			shippingCtx.SourcePincode(),
			shippingCtx.DestinationPincode(),
			courierCode,
			weightKg,
		)
		checked = append(checked, courierCode)
		if err != nil {
			// A failed check counts as unserviceable; fall through to the next
			// courier instead of surfacing the dependency failure.
			lastCause = err
			continue
		}
		if result.Serviceable {
			return CourierSelection{CourierCode: courierCode, Result: result}, nil
		}
	}

	source := shippingCtx.SourcePincode().String()
	destination := shippingCtx.DestinationPincode().String()
	if lastCause != nil {
		return CourierSelection{}, errs.NewUnserviceableRouteErrorWithCause(
			source, destination, checked, lastCause)
	}
	return CourierSelection{}, errs.NewUnserviceableRouteError(source, destination, checked)
}
