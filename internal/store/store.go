// Package store provides the in-process mirror of the operator's flight
// collection. It is an explicit, injected container rather than a package
// level singleton so tests can run against isolated instances.
package store

import (
	"sync"

	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
)

// FlightStore mirrors the backend flight collection for one operator.
// Mutation handlers are the only writers; any component may read. Updates
// are plain replace-by-id, append or filter-out operations.
type FlightStore struct {
	mu      sync.RWMutex
	flights []domain.Flight
}

func NewFlightStore() *FlightStore {
	return &FlightStore{}
}

// Replace swaps the full collection, used after a fresh list fetch.
func (s *FlightStore) Replace(flights []domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append([]domain.Flight(nil), flights...)
}

// Upsert replaces the flight with the same id or appends it when absent.
func (s *FlightStore) Upsert(f domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID == f.ID {
			s.flights[i] = f
			return
		}
	}
	s.flights = append(s.flights, f)
}

// Remove filters out the flight with the given id. Unknown ids are a no-op.
func (s *FlightStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.flights[:0]
	for _, f := range s.flights {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.flights = kept
}

// Get returns a copy of the flight with the given id.
func (s *FlightStore) Get(id string) (domain.Flight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.flights {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}

// Snapshot returns a copy of the current collection.
func (s *FlightStore) Snapshot() []domain.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Flight(nil), s.flights...)
}

func (s *FlightStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flights)
}
