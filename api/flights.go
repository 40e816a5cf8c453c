package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
	"github.com/BoysInc/volair-dashboard-sub000/internal/platform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/service/flightform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// FleetSource lists the operator's aircraft so the scheduling form can
// resolve hourly rates.
type FleetSource interface {
	ListAircraft(ctx context.Context, operatorID string) ([]domain.Aircraft, error)
}

type FlightHandler struct {
	operatorID string
	service    flights.FlightUseCase
	forms      *flightform.Manager
	fleet      FleetSource
}

// flightRequest carries the operator's form input. Price fields arrive as
// the raw typed text and go through the price formatter; empty price text
// keeps the derived suggestion.
type flightRequest struct {
	AircraftID         string `json:"aircraft_id"`
	DepartureAirportID string `json:"departure_airport_id"`
	ArrivalAirportID   string `json:"arrival_airport_id"`
	RouteType          string `json:"route_type"`
	DepartureDate      string `json:"departure_date"` // "YYYY-MM-DD"
	DepartureTime      string `json:"departure_time"` // "HH:mm"
	EstimatedDuration  string `json:"estimated_duration"`
	OneWayPrice        string `json:"one_way_price_usd"`
	RoundTripPrice     string `json:"round_trip_price_usd"`
	Status             string `json:"status"`
	IsEmptyLeg         bool   `json:"is_empty_leg"`
}

func NewFlightHandler(operatorID string, service flights.FlightUseCase, forms *flightform.Manager, fleet FleetSource) *FlightHandler {
	return &FlightHandler{operatorID: operatorID, service: service, forms: forms, fleet: fleet}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/widgets", h.widgets)
	router.POST("/", h.create)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *FlightHandler) widgets(c *gin.Context) {
	widgets, err := h.service.Widgets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": widgets})
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fleet, err := h.fleet.ListAircraft(c.Request.Context(), h.operatorID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	form := h.forms.CreateForm(fleet)
	applyRequest(form, req)
	h.submit(c, form, http.StatusCreated)
}

func (h *FlightHandler) update(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.findFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}

	fleet, err := h.fleet.ListAircraft(c.Request.Context(), h.operatorID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	form := h.forms.EditForm(*existing, fleet)
	applyRequest(form, req)
	h.submit(c, form, http.StatusOK)
}

func (h *FlightHandler) remove(c *gin.Context) {
	existing, err := h.findFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}

	form := h.forms.EditForm(*existing, nil)
	if err := form.Delete(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// The confirmation dialog's second step travels as ?confirm=true.
	if c.Query("confirm") != "true" {
		form.CancelDelete()
		c.JSON(http.StatusBadRequest, gin.H{"error": "deletion requires confirmation", "confirm_required": true})
		return
	}

	if err := form.ConfirmDelete(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) submit(c *gin.Context, form *flightform.Form, successStatus int) {
	flight, err := form.Submit(c.Request.Context())
	if err != nil {
		var verr *platform.ValidationError
		switch {
		case errors.Is(err, flightform.ErrInvalidDraft), errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": form.Errors()})
		case errors.Is(err, flightform.ErrInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(successStatus, gin.H{"data": flight})
}

// findFlight resolves an existing flight through the cache-first list, the
// same collection the table views read.
func (h *FlightHandler) findFlight(ctx context.Context, id string) (*domain.Flight, error) {
	list, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// applyRequest drives the form the way the dialog does: aircraft and
// duration first so the derived price lands, then any operator-typed price
// override on top.
func applyRequest(form *flightform.Form, req flightRequest) {
	form.SetRouteType(domain.RouteType(req.RouteType))
	form.SetDepartureAirport(req.DepartureAirportID)
	form.SetArrivalAirport(req.ArrivalAirportID)
	form.SetDepartureDate(req.DepartureDate)
	form.SetDepartureTime(req.DepartureTime)
	form.SetAircraft(req.AircraftID)
	form.SetDuration(req.EstimatedDuration)
	if req.Status != "" {
		form.SetStatus(domain.FlightStatus(req.Status))
	}
	form.SetEmptyLeg(req.IsEmptyLeg)
	if req.OneWayPrice != "" {
		form.SetPriceField(flightform.OneWayPrice, req.OneWayPrice)
	}
	if req.RoundTripPrice != "" {
		form.SetPriceField(flightform.RoundTripPrice, req.RoundTripPrice)
	}
}
