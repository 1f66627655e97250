package queries

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/shipping"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// GetShippingContextQueryHandler resolves the effective shipping context for
// a vendor dispatching to a company destination.
type GetShippingContextQueryHandler struct {
	logistics          ports.LogisticsRepository
	contextResolver    services.ContextResolver
	integrationEnabled bool
}

// NewGetShippingContextQueryHandler creates the handler.
// integrationEnabled is the global shipping integration switch: when false
// every context resolves to manual regardless of company configuration.
func NewGetShippingContextQueryHandler(
	logistics ports.LogisticsRepository, integrationEnabled bool,
) (GetShippingContextQueryHandler, error) {
	if logistics == nil {
		return GetShippingContextQueryHandler{}, errs.NewValueIsRequiredError("logistics")
	}

	return GetShippingContextQueryHandler{
		logistics:          logistics,
		contextResolver:    services.NewContextResolver(),
		integrationEnabled: integrationEnabled,
	}, nil
}

// Handle resolves the shipping context. A missing courier routing is not an
// error: the context simply reports hasRouting=false so the caller can fall
// back to manual entry.
func (h GetShippingContextQueryHandler) Handle(
	ctx context.Context, query GetShippingContextQuery,
) (GetShippingContextQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShippingContextQueryResponse{}, err
	}

	mode, err := h.logistics.GetCompanyShippingMode(ctx, query.CompanyID())
	if err != nil {
		return GetShippingContextQueryResponse{}, fmt.Errorf("get company shipping mode: %w", err)
	}

	routing, err := h.logistics.GetCourierRouting(ctx, query.VendorID(), query.CompanyID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return GetShippingContextQueryResponse{}, fmt.Errorf("get courier routing: %w", err)
	}

	warehouses, err := h.logistics.GetWarehouses(ctx, query.CompanyID())
	if err != nil {
		return GetShippingContextQueryResponse{}, fmt.Errorf("get warehouses: %w", err)
	}

	shippingCtx, err := h.contextResolver.Resolve(
		h.integrationEnabled, mode, routing, warehouses, query.DestinationPincode(),
	)
	if err != nil {
		return GetShippingContextQueryResponse{}, err
	}

	return toShippingContextResponse(shippingCtx), nil
}

func toShippingContextResponse(shippingCtx *shipping.Context) GetShippingContextQueryResponse {
	response := GetShippingContextQueryResponse{
		ShippingMode:       shippingCtx.Mode().String(),
		HasRouting:         shippingCtx.HasRouting(),
		DestinationPincode: shippingCtx.DestinationPincode().String(),
	}

	if shippingCtx.HasRouting() {
		response.ProviderCode = shippingCtx.ProviderCode()
		response.PrimaryCourier = shippingCtx.PrimaryCourier()
		response.SecondaryCourier = shippingCtx.SecondaryCourier()
		response.SourcePincode = shippingCtx.SourcePincode().String()
	}

	return response
}
