package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BoysInc/volair-dashboard-sub000/config"
	"github.com/stretchr/testify/assert"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(config.PlatformConfig{BaseURL: srv.URL, Token: "test-token", TimeoutSeconds: 5})
}

func TestClient_ListFlights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/operators/op-1/flights", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"f-1","route_type":"Charter","status":"Active"}]}`))
	}))
	defer srv.Close()

	flights, err := newTestClient(srv).ListFlights(context.Background(), "op-1")
	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, "f-1", flights[0].ID)
}

func TestClient_CreateFlight_PayloadShape(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/operators/op-1/flights", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"f-9","route_type":"Seats","status":"Active"}}`))
	}))
	defer srv.Close()

	payload := FlightPayload{
		AircraftID:        "ac-1",
		DepartureDate:     "2024-03-01 14:30",
		EstimatedDuration: "2",
		IsEmptyLeg:        "true",
		RouteType:         "Seats",
		OperatorTimezone:  "America/New_York",
	}
	flight, err := newTestClient(srv).CreateFlight(context.Background(), "op-1", payload)
	assert.NoError(t, err)
	assert.Equal(t, "f-9", flight.ID)

	// is_empty_leg must travel as a string literal, not a JSON boolean.
	assert.Equal(t, "true", body["is_empty_leg"])
	assert.Equal(t, "2024-03-01 14:30", body["departure_date"])
	assert.Equal(t, "2", body["estimated_duration"])
	assert.Equal(t, "America/New_York", body["operator_timezone"])
}

func TestClient_UpdateFlight_UsesPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/operators/op-1/flights/f-1", r.URL.Path)
		w.Write([]byte(`{"data":{"id":"f-1"}}`))
	}))
	defer srv.Close()

	flight, err := newTestClient(srv).UpdateFlight(context.Background(), "op-1", "f-1", FlightPayload{})
	assert.NoError(t, err)
	assert.Equal(t, "f-1", flight.ID)
}

func TestClient_ValidationErrorDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"aircraft_id":["Aircraft is required"]}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).CreateFlight(context.Background(), "op-1", FlightPayload{})
	assert.Error(t, err)

	verr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, verr.StatusCode)
	assert.Equal(t, []string{"Aircraft is required"}, verr.Fields["aircraft_id"])
}

func TestClient_ServerErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).CreateFlight(context.Background(), "op-1", FlightPayload{})
	assert.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.False(t, ok)
}

func TestClient_DeleteFlight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/operators/op-1/flights/f-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv).DeleteFlight(context.Background(), "op-1", "f-1")
	assert.NoError(t, err)
}

func TestClient_FlightWidgets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/operators/op-1/flights/widgets", r.URL.Path)
		w.Write([]byte(`{"data":{"today_flights":3,"active_flights":12,"completed_flights":40}}`))
	}))
	defer srv.Close()

	widgets, err := newTestClient(srv).FlightWidgets(context.Background(), "op-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, widgets.TodayFlights)
	assert.Equal(t, 12, widgets.ActiveFlights)
	assert.Equal(t, 40, widgets.CompletedFlights)
}
