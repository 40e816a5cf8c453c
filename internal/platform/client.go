// Package platform is the REST client for the charter platform backend,
// the source of truth for flights, aircraft and widget counters.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/BoysInc/volair-dashboard-sub000/config"
	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
)

// FlightPayload is the create/update request body. Field names and types
// follow the backend contract exactly: departure_date is the combined
// "YYYY-MM-DD HH:mm" string (empty for Charter), estimated_duration stays a
// string, and is_empty_leg is the literal "true"/"false" the backend
// expects, not a JSON boolean.
type FlightPayload struct {
	AircraftID         string  `json:"aircraft_id"`
	DepartureAirportID string  `json:"departure_airport_id"`
	ArrivalAirportID   string  `json:"arrival_airport_id"`
	DepartureDate      string  `json:"departure_date"`
	EstimatedDuration  string  `json:"estimated_duration"`
	Status             string  `json:"status"`
	OneWayPriceUSD     float64 `json:"one_way_price_usd"`
	RoundTripPriceUSD  float64 `json:"round_trip_price_usd"`
	IsEmptyLeg         string  `json:"is_empty_leg"`
	RouteType          string  `json:"route_type"`
	OperatorTimezone   string  `json:"operator_timezone"`
}

// ValidationError carries the backend's field-level validation messages so
// the form can bind each one to its input.
type ValidationError struct {
	StatusCode int
	Fields     map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("platform rejected request with status %d (%d invalid fields)", e.StatusCode, len(e.Fields))
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg config.PlatformConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
	}
}

type flightEnvelope struct {
	Data domain.Flight `json:"data"`
}

type flightListEnvelope struct {
	Data []domain.Flight `json:"data"`
}

type aircraftListEnvelope struct {
	Data []domain.Aircraft `json:"data"`
}

type widgetsEnvelope struct {
	Data domain.FlightWidgets `json:"data"`
}

type errorEnvelope struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

func (c *Client) ListFlights(ctx context.Context, operatorID string) ([]domain.Flight, error) {
	var env flightListEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/operators/%s/flights", operatorID), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) ListAircraft(ctx context.Context, operatorID string) ([]domain.Aircraft, error) {
	var env aircraftListEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/operators/%s/aircrafts", operatorID), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) CreateFlight(ctx context.Context, operatorID string, payload FlightPayload) (*domain.Flight, error) {
	var env flightEnvelope
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/operators/%s/flights", operatorID), payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdateFlight(ctx context.Context, operatorID, flightID string, payload FlightPayload) (*domain.Flight, error) {
	var env flightEnvelope
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/operators/%s/flights/%s", operatorID, flightID), payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteFlight(ctx context.Context, operatorID, flightID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/operators/%s/flights/%s", operatorID, flightID), nil, nil)
}

func (c *Client) FlightWidgets(ctx context.Context, operatorID string) (*domain.FlightWidgets, error) {
	var env widgetsEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/operators/%s/flights/widgets", operatorID), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.decodeError(resp)
}

func (c *Client) decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var env errorEnvelope
		if err := json.Unmarshal(data, &env); err == nil && len(env.Errors) > 0 {
			return &ValidationError{StatusCode: resp.StatusCode, Fields: env.Errors}
		}
		if env.Message != "" {
			return fmt.Errorf("platform returned status %d: %s", resp.StatusCode, env.Message)
		}
	}
	return fmt.Errorf("platform returned status %d", resp.StatusCode)
}
