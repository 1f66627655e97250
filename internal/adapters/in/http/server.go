package http

import (
	"errors"
	"net/http"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/shipment"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createManualShipmentHandler  commands.CreateManualShipmentCommandHandler
	createAPIShipmentHandler     commands.CreateAPIShipmentCommandHandler
	advanceShipmentStatusHandler commands.AdvanceShipmentStatusCommandHandler

	// Query handlers
	listLogicalOrdersHandler  queries.ListLogicalOrdersQueryHandler
	getShippingContextHandler queries.GetShippingContextQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createManualShipmentHandler commands.CreateManualShipmentCommandHandler,
	createAPIShipmentHandler commands.CreateAPIShipmentCommandHandler,
	advanceShipmentStatusHandler commands.AdvanceShipmentStatusCommandHandler,
	listLogicalOrdersHandler queries.ListLogicalOrdersQueryHandler,
	getShippingContextHandler queries.GetShippingContextQueryHandler,
) *Server {
	return &Server{
		createManualShipmentHandler:  createManualShipmentHandler,
		createAPIShipmentHandler:     createAPIShipmentHandler,
		advanceShipmentStatusHandler: advanceShipmentStatusHandler,
		listLogicalOrdersHandler:     listLogicalOrdersHandler,
		getShippingContextHandler:    getShippingContextHandler,
	}
}

// RegisterRoutes binds all handlers to the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/orders", s.ListOrders)
	e.GET("/api/v1/shipping-context", s.GetShippingContext)
	e.POST("/api/v1/shipments", s.CreateShipment)
	e.PATCH("/api/v1/shipments/:shipmentId/status", s.AdvanceShipmentStatus)
}

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ListOrders handles GET /api/v1/orders - lists logical orders for a company
// with per-caller pending actions.
func (s *Server) ListOrders(ctx echo.Context) error {
	companyID, err := kernel.UUIDFromString(ctx.QueryParam("companyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid companyId: " + err.Error(),
		})
	}

	query, err := queries.NewListLogicalOrdersQuery(
		companyID,
		services.CallerRole(ctx.QueryParam("role")),
		ctx.QueryParam("status"),
		ctx.QueryParam("location"),
		ctx.QueryParam("search"),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid listing parameters: " + err.Error(),
		})
	}

	orders, err := s.listLogicalOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to list orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetShippingContext handles GET /api/v1/shipping-context - resolves the
// effective shipping mode, courier routing, and source warehouse for a
// company-vendor pair.
func (s *Server) GetShippingContext(ctx echo.Context) error {
	companyID, err := kernel.UUIDFromString(ctx.QueryParam("companyId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid companyId: " + err.Error(),
		})
	}

	vendorID, err := kernel.UUIDFromString(ctx.QueryParam("vendorId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vendorId: " + err.Error(),
		})
	}

	pincode, err := kernel.NewPincode(ctx.QueryParam("destinationPincode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid destinationPincode: " + err.Error(),
		})
	}

	query, err := queries.NewGetShippingContextQuery(companyID, vendorID, pincode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping context parameters: " + err.Error(),
		})
	}

	context, err := s.getShippingContextHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to resolve shipping context")
	}

	return ctx.JSON(http.StatusOK, context)
}

// CreateShipmentRequest is the payload for POST /api/v1/shipments. Mode
// selects between a manually recorded dispatch and an aggregator booking;
// the transport, awb, and destination fields only apply to manual shipments.
type CreateShipmentRequest struct {
	Mode              string             `json:"mode"`
	RequisitionID     string             `json:"requisitionId"`
	VendorID          string             `json:"vendorId"`
	PackageTemplateID string             `json:"packageTemplateId,omitempty"`
	Dimensions        *DimensionsRequest `json:"dimensions,omitempty"`
	Transport         string             `json:"transport,omitempty"`
	Awb               string             `json:"awb,omitempty"`
	Destination       *AddressRequest    `json:"destination,omitempty"`
	DispatchDate      time.Time          `json:"dispatchDate"`
}

// DimensionsRequest carries custom package dimensions in centimeters.
type DimensionsRequest struct {
	LengthCm  float64 `json:"lengthCm"`
	BreadthCm float64 `json:"breadthCm"`
	HeightCm  float64 `json:"heightCm"`
	Divisor   float64 `json:"divisor,omitempty"`
}

// AddressRequest is a destination address as submitted by the caller.
type AddressRequest struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// CreateShipmentResponse returns the identifier of the recorded shipment.
type CreateShipmentResponse struct {
	ShipmentID string `json:"shipmentId"`
}

// CreateShipment handles POST /api/v1/shipments - records a manual shipment
// or books one through the courier aggregator, depending on the payload mode.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requisitionID, err := kernel.UUIDFromString(req.RequisitionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid requisitionId: " + err.Error(),
		})
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vendorId: " + err.Error(),
		})
	}

	templateID, dimensions, err := parsePackage(req.PackageTemplateID, req.Dimensions)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid package: " + err.Error(),
		})
	}

	shipmentID := kernel.NewUUID()

	switch req.Mode {
	case "MANUAL":
		err = s.createManualShipment(ctx, req, shipmentID, requisitionID, vendorID, templateID, dimensions)
	case "API":
		err = s.createAPIShipment(ctx, req, shipmentID, requisitionID, vendorID, templateID, dimensions)
	default:
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid mode: must be MANUAL or API",
		})
	}
	if err != nil {
		return errorResponse(ctx, err, "Failed to create shipment")
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		ShipmentID: shipmentID.String(),
	})
}

func (s *Server) createManualShipment(
	ctx echo.Context,
	req CreateShipmentRequest,
	shipmentID, requisitionID, vendorID kernel.UUID,
	templateID *kernel.UUID,
	dimensions *shipment.Dimensions,
) error {
	destination, err := parseAddress(req.Destination)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateManualShipmentCommand(
		shipmentID,
		requisitionID,
		vendorID,
		templateID,
		dimensions,
		parseTransport(req.Transport),
		req.Awb,
		destination,
		req.DispatchDate,
	)
	if err != nil {
		return err
	}

	return s.createManualShipmentHandler.Handle(ctx.Request().Context(), cmd)
}

func (s *Server) createAPIShipment(
	ctx echo.Context,
	req CreateShipmentRequest,
	shipmentID, requisitionID, vendorID kernel.UUID,
	templateID *kernel.UUID,
	dimensions *shipment.Dimensions,
) error {
	cmd, err := commands.NewCreateAPIShipmentCommand(
		shipmentID,
		requisitionID,
		vendorID,
		templateID,
		dimensions,
		req.DispatchDate,
	)
	if err != nil {
		return err
	}

	return s.createAPIShipmentHandler.Handle(ctx.Request().Context(), cmd)
}

// AdvanceStatusRequest is the payload for PATCH /api/v1/shipments/{id}/status.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// AdvanceShipmentStatus handles PATCH /api/v1/shipments/{shipmentId}/status -
// moves a shipment forward through its lifecycle.
func (s *Server) AdvanceShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipmentId: " + err.Error(),
		})
	}

	var req AdvanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAdvanceShipmentStatusCommand(shipmentID, parseStatus(req.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status transition request: " + err.Error(),
		})
	}

	if err := s.advanceShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to advance shipment status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps a use-case error to the appropriate HTTP status.
func errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrRouteIsUnserviceable):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error() + "; record the shipment manually instead",
		})
	case errors.Is(err, errs.ErrConfigurationIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrDependencyFailed):
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func parsePackage(
	templateID string, dims *DimensionsRequest,
) (*kernel.UUID, *shipment.Dimensions, error) {
	var id *kernel.UUID
	if templateID != "" {
		parsed, err := kernel.UUIDFromString(templateID)
		if err != nil {
			return nil, nil, err
		}
		id = &parsed
	}

	var dimensions *shipment.Dimensions
	if dims != nil {
		parsed, err := shipment.NewDimensions(
			dims.LengthCm, dims.BreadthCm, dims.HeightCm, dims.Divisor)
		if err != nil {
			return nil, nil, err
		}
		dimensions = &parsed
	}

	return id, dimensions, nil
}

func parseAddress(req *AddressRequest) (kernel.Address, error) {
	if req == nil {
		return kernel.Address{}, errs.NewValueIsRequiredError("destination")
	}

	pincode, err := kernel.NewPincode(req.Pincode)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(req.Line1, req.City, req.State, pincode)
}

func parseTransport(value string) shipment.TransportMode {
	switch value {
	case "COURIER":
		return shipment.Courier
	case "DIRECT":
		return shipment.Direct
	case "HAND_DELIVERY":
		return shipment.HandDelivery
	default:
		return shipment.UnknownTransport
	}
}

func parseStatus(value string) shipment.Status {
	switch value {
	case "CREATED":
		return shipment.Created
	case "IN_TRANSIT":
		return shipment.InTransit
	case "DELIVERED":
		return shipment.Delivered
	case "FAILED":
		return shipment.Failed
	default:
		return shipment.UnknownStatus
	}
}
