package flights

import (
	"context"

	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
	"github.com/BoysInc/volair-dashboard-sub000/internal/store"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Widgets(ctx context.Context) (*domain.FlightWidgets, error)
}

// Platform is the slice of the backend client this service needs.
type Platform interface {
	ListFlights(ctx context.Context, operatorID string) ([]domain.Flight, error)
	FlightWidgets(ctx context.Context, operatorID string) (*domain.FlightWidgets, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	GetWidgets(ctx context.Context) (*domain.FlightWidgets, error)
	SetWidgets(ctx context.Context, widgets *domain.FlightWidgets) error
}

// FlightService serves the dashboard's read side: the flight table and the
// widget cards. Reads go cache first, then upstream, repopulating both the
// cache and the local store mirror.
type FlightService struct {
	operatorID string
	platform   Platform
	cache      Cache
	store      *store.FlightStore
}

func NewFlightService(operatorID string, platform Platform, cache Cache, flightStore *store.FlightStore) *FlightService {
	return &FlightService{operatorID: operatorID, platform: platform, cache: cache, store: flightStore}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			// Keep the store mirror aligned with what views render.
			if s.store != nil {
				s.store.Replace(cached)
			}
			return cached, nil
		}
	}

	flights, err := s.platform.ListFlights(ctx, s.operatorID)
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		s.store.Replace(flights)
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) Widgets(ctx context.Context) (*domain.FlightWidgets, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetWidgets(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	widgets, err := s.platform.FlightWidgets(ctx, s.operatorID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetWidgets(ctx, widgets)
	}
	return widgets, nil
}

var _ FlightUseCase = (*FlightService)(nil)
