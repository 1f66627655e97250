// Package courieraggr provides the HTTP client for the external carrier
// aggregator. The aggregator fronts multiple shipping providers behind one
// API: serviceability checks, shipment creation, and tracking.
package courieraggr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client implements ports.AggregatorClient against the aggregator's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an aggregator client. baseURL is the aggregator endpoint
// without a trailing slash; apiKey is sent as a bearer token.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

type serviceabilityRequest struct {
	ProviderCode       string  `json:"providerCode"`
	SourcePincode      string  `json:"sourcePincode"`
	DestinationPincode string  `json:"destinationPincode"`
	CourierCode        string  `json:"courierCode"`
	WeightKg           float64 `json:"weightKg"`
}

type serviceabilityResponse struct {
	Serviceable   bool    `json:"serviceable"`
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimatedDays"`
	Message       string  `json:"message"`
}

// CheckServiceability asks the aggregator whether the courier serves the lane
// at the given chargeable weight.
func (c *Client) CheckServiceability(
	ctx context.Context,
	providerCode string,
	source, destination kernel.Pincode,
	courierCode string,
	weightKg float64,
) (ports.ServiceabilityResult, error) {
	request := serviceabilityRequest{
		ProviderCode:       providerCode,
		SourcePincode:      source.String(),
		DestinationPincode: destination.String(),
		CourierCode:        courierCode,
		WeightKg:           weightKg,
	}

	var response serviceabilityResponse
	if err := c.post(ctx, "/v1/serviceability", request, &response); err != nil {
		return ports.ServiceabilityResult{}, err
	}

	return ports.ServiceabilityResult{
		Serviceable:   response.Serviceable,
		Cost:          response.Cost,
		EstimatedDays: response.EstimatedDays,
		Message:       response.Message,
	}, nil
}

type createShipmentRequest struct {
	ProviderCode       string  `json:"providerCode"`
	CourierCode        string  `json:"courierCode"`
	SourcePincode      string  `json:"sourcePincode"`
	DestinationPincode string  `json:"destinationPincode"`
	WeightKg           float64 `json:"weightKg"`
	DispatchDate       string  `json:"dispatchDate"`
	ReferenceID        string  `json:"referenceId"`
}

type createShipmentResponse struct {
	TrackingRef string `json:"trackingRef"`
}

// CreateShipment books a shipment with the aggregator and returns the
// provider tracking reference along with the raw response body.
func (c *Client) CreateShipment(
	ctx context.Context, request ports.CreateShipmentRequest,
) (ports.CreateShipmentResult, error) {
	payload := createShipmentRequest{
		ProviderCode:       request.ProviderCode,
		CourierCode:        request.CourierCode,
		SourcePincode:      request.SourcePincode.String(),
		DestinationPincode: request.DestinationPincode.String(),
		WeightKg:           request.ChargeableWeightKg,
		DispatchDate:       request.DispatchDate.Format(time.RFC3339),
		ReferenceID:        request.RequisitionID.String(),
	}

	raw, err := c.postRaw(ctx, "/v1/shipments", payload)
	if err != nil {
		return ports.CreateShipmentResult{}, err
	}

	var response createShipmentResponse
	if err = json.Unmarshal(raw, &response); err != nil {
		return ports.CreateShipmentResult{}, fmt.Errorf("decode create shipment response: %w", err)
	}
	if response.TrackingRef == "" {
		return ports.CreateShipmentResult{}, fmt.Errorf("aggregator returned no tracking reference")
	}

	return ports.CreateShipmentResult{
		TrackingRef: response.TrackingRef,
		RawResponse: string(raw),
	}, nil
}

type trackingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TrackShipment retrieves the provider's current status for a tracking reference.
func (c *Client) TrackShipment(
	ctx context.Context, providerCode, trackingRef string,
) (ports.TrackingResult, error) {
	url := fmt.Sprintf("%s/v1/shipments/%s/track?provider=%s", c.baseURL, trackingRef, providerCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.TrackingResult{}, err
	}
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return ports.TrackingResult{}, err
	}

	var response trackingResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return ports.TrackingResult{}, fmt.Errorf("decode tracking response: %w", err)
	}

	return ports.TrackingResult{
		Status:  response.Status,
		Message: response.Message,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, request any, response any) error {
	raw, err := c.postRaw(ctx, path, request)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, response); err != nil {
		return fmt.Errorf("decode aggregator response: %w", err)
	}
	return nil
}

func (c *Client) postRaw(ctx context.Context, path string, request any) ([]byte, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	return c.do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("aggregator returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
