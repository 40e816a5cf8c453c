package flightform

import (
	"context"
	"log"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
	"github.com/BoysInc/volair-dashboard-sub000/internal/kafka"
	"github.com/BoysInc/volair-dashboard-sub000/internal/platform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/pricing"
	"github.com/BoysInc/volair-dashboard-sub000/internal/repository"
	"github.com/BoysInc/volair-dashboard-sub000/internal/store"
)

// Platform is the slice of the backend client the forms mutate through.
type Platform interface {
	CreateFlight(ctx context.Context, operatorID string, payload platform.FlightPayload) (*domain.Flight, error)
	UpdateFlight(ctx context.Context, operatorID, flightID string, payload platform.FlightPayload) (*domain.Flight, error)
	DeleteFlight(ctx context.Context, operatorID, flightID string) error
}

type Cache interface {
	InvalidateFlightData(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Manager carries the collaborators shared by every form instance: the
// platform client, the flight store mirror, the cache, the event producer
// and the activity log.
type Manager struct {
	operatorID       string
	operatorTimezone string

	platform Platform
	store    *store.FlightStore
	cache    Cache
	producer Producer
	activity repository.ActivityRepository

	eventsTopic        string
	notificationsTopic string
}

type ManagerOption func(*Manager)

func WithNotificationsTopic(topic string) ManagerOption {
	return func(m *Manager) {
		m.notificationsTopic = topic
	}
}

func WithActivityLog(repo repository.ActivityRepository) ManagerOption {
	return func(m *Manager) {
		m.activity = repo
	}
}

func NewManager(
	operatorID, operatorTimezone string,
	backend Platform,
	flightStore *store.FlightStore,
	flightCache Cache,
	producer Producer,
	eventsTopic string,
	opts ...ManagerOption,
) *Manager {
	m := &Manager{
		operatorID:       operatorID,
		operatorTimezone: operatorTimezone,
		platform:         backend,
		store:            flightStore,
		cache:            flightCache,
		producer:         producer,
		eventsTopic:      eventsTopic,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateForm opens a blank scheduling form: Charter route, Active status,
// zero prices.
func (m *Manager) CreateForm(fleet []domain.Aircraft) *Form {
	draft := domain.FlightDraft{
		RouteType: domain.RouteTypeCharter,
		Status:    domain.FlightStatusActive,
	}
	return newForm(m, "", draft, fleet)
}

// EditForm opens a form populated from an existing flight, splitting the
// stored departure stamp back into date and time parts and reformatting
// the stored prices for display.
func (m *Manager) EditForm(flight domain.Flight, fleet []domain.Aircraft) *Form {
	date, timePart := splitDeparture(flight.DepartureDate)
	draft := domain.FlightDraft{
		AircraftID:         flight.Aircraft.ID,
		DepartureAirportID: flight.DepartureAirport.ID,
		ArrivalAirportID:   flight.ArrivalAirport.ID,
		RouteType:          flight.RouteType,
		DepartureDate:      date,
		DepartureTime:      timePart,
		EstimatedDuration:  flight.EstimatedDuration,
		OneWayPriceUSD:     flight.OneWayPriceUSD,
		RoundTripPriceUSD:  flight.RoundTripPriceUSD,
		OneWayPriceText:    pricing.Format(flight.OneWayPriceUSD),
		RoundTripPriceText: pricing.Format(flight.RoundTripPriceUSD),
		Status:             flight.Status,
		IsEmptyLeg:         flight.IsEmptyLeg,
	}
	return newForm(m, flight.ID, draft, fleet)
}

func (m *Manager) publishEvent(ctx context.Context, eventType, flightID, routeType, status string) {
	if m.producer == nil || m.eventsTopic == "" {
		return
	}
	event := kafka.FlightEvent{
		Type:       eventType,
		FlightID:   flightID,
		OperatorID: m.operatorID,
		RouteType:  routeType,
		Status:     status,
		OccurredAt: time.Now(),
	}
	if err := m.producer.Publish(ctx, m.eventsTopic, flightID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %s: %v", eventType, flightID, err)
		return
	}
	if m.notificationsTopic != "" {
		if err := m.producer.Publish(ctx, m.notificationsTopic, flightID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for flight %s: %v", eventType, flightID, err)
		}
	}
}

// splitDeparture breaks a stored "YYYY-MM-DD HH:mm" stamp into its form
// fields. Charter flights carry an empty stamp and yield empty parts.
func splitDeparture(stamp string) (date, timePart string) {
	if stamp == "" {
		return "", ""
	}
	if len(stamp) > 10 && stamp[10] == ' ' {
		return stamp[:10], stamp[11:]
	}
	return stamp, ""
}
