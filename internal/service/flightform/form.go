// Package flightform implements the flight scheduling form: a draft bound
// to its validation rules and derived pricing, owning the submit and delete
// lifecycle against the platform backend.
package flightform

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
	"github.com/BoysInc/volair-dashboard-sub000/internal/platform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/pricing"
	"github.com/BoysInc/volair-dashboard-sub000/internal/repository"
	"github.com/BoysInc/volair-dashboard-sub000/internal/validation"
	"github.com/google/uuid"
)

var (
	// ErrInFlight means a submit or delete request is already pending;
	// the call is rejected instead of issuing a second request.
	ErrInFlight = errors.New("a request is already in flight")
	// ErrInvalidDraft means local validation failed and no request was
	// issued; field messages are available via Errors.
	ErrInvalidDraft = errors.New("draft failed validation")
	// ErrFormClosed means the form was already submitted or closed.
	ErrFormClosed = errors.New("form is closed")
	// ErrDeleteNotRequested means ConfirmDelete was called without a
	// preceding Delete, so the confirmation step was skipped.
	ErrDeleteNotRequested = errors.New("delete was not requested")
	// ErrNotPersisted means delete was requested on a create form.
	ErrNotPersisted = errors.New("flight is not persisted yet")
)

type PriceField string

const (
	OneWayPrice    PriceField = "one_way_price_usd"
	RoundTripPrice PriceField = "round_trip_price_usd"
)

// Form binds one FlightDraft to its rules and derived price. A Form serves
// a single open create or edit dialog and is not safe for concurrent use;
// the busy flag only guards against a second submission while the first
// round trip is pending.
type Form struct {
	mgr      *Manager
	flightID string // empty for the create variant

	draft    domain.FlightDraft
	aircraft map[string]domain.Aircraft

	fieldErrors      validation.FieldErrors
	busy             bool
	closed           bool
	confirmingDelete bool
}

func newForm(mgr *Manager, flightID string, draft domain.FlightDraft, fleet []domain.Aircraft) *Form {
	byID := make(map[string]domain.Aircraft, len(fleet))
	for _, a := range fleet {
		byID[a.ID] = a
	}
	return &Form{
		mgr:         mgr,
		flightID:    flightID,
		draft:       draft,
		aircraft:    byID,
		fieldErrors: validation.FieldErrors{},
	}
}

func (f *Form) Draft() domain.FlightDraft { return f.draft }

func (f *Form) Errors() validation.FieldErrors { return f.fieldErrors }

func (f *Form) Busy() bool { return f.busy }

func (f *Form) Closed() bool { return f.closed }

func (f *Form) ConfirmingDelete() bool { return f.confirmingDelete }

func (f *Form) IsEdit() bool { return f.flightID != "" }

// SetAircraft selects the aircraft and re-runs the derived price rule.
func (f *Form) SetAircraft(aircraftID string) {
	f.draft.AircraftID = aircraftID
	f.recomputePrices()
}

// SetDuration stores the operator-typed duration and re-runs the derived
// price rule. An unusable duration leaves the existing prices untouched.
func (f *Form) SetDuration(raw string) {
	f.draft.EstimatedDuration = raw
	f.recomputePrices()
}

// SetRouteType switches the conditional rule set. Moving to Charter clears
// any stale date/time messages so a previously blocked draft becomes
// submittable immediately.
func (f *Form) SetRouteType(rt domain.RouteType) {
	f.draft.RouteType = rt
	if rt == domain.RouteTypeCharter {
		delete(f.fieldErrors, "departure_date")
		delete(f.fieldErrors, "departure_time")
	}
}

func (f *Form) SetDepartureAirport(airportID string) { f.draft.DepartureAirportID = airportID }

func (f *Form) SetArrivalAirport(airportID string) { f.draft.ArrivalAirportID = airportID }

func (f *Form) SetDepartureDate(date string) { f.draft.DepartureDate = date }

func (f *Form) SetDepartureTime(t string) { f.draft.DepartureTime = t }

func (f *Form) SetStatus(s domain.FlightStatus) { f.draft.Status = s }

func (f *Form) SetEmptyLeg(v bool) { f.draft.IsEmptyLeg = v }

// SetPriceField parses the operator-typed text and mirrors the formatted
// value back, so the numeric and display values never diverge.
func (f *Form) SetPriceField(field PriceField, raw string) {
	value := pricing.Parse(raw)
	switch field {
	case OneWayPrice:
		f.draft.OneWayPriceUSD = value
		f.draft.OneWayPriceText = pricing.Format(value)
	case RoundTripPrice:
		f.draft.RoundTripPriceUSD = value
		f.draft.RoundTripPriceText = pricing.Format(value)
	}
}

// recomputePrices applies the derived price rule whenever the aircraft or
// the duration changes. It deliberately overwrites operator-typed prices:
// the derivation is one-way, with no dirty flag shielding manual edits.
func (f *Form) recomputePrices() {
	a, ok := f.aircraft[f.draft.AircraftID]
	if !ok {
		return
	}
	price, ok := pricing.Derive(a.PricePerHourUSD, f.draft.EstimatedDuration)
	if !ok {
		return
	}
	f.draft.OneWayPriceUSD = price
	f.draft.OneWayPriceText = pricing.Format(price)
	f.draft.RoundTripPriceUSD = price
	f.draft.RoundTripPriceText = pricing.Format(price)
}

// Submit validates the draft and issues the create or update request. On
// success the returned flight is merged into the store, both cache keys are
// invalidated and the form closes. On failure the form stays open with the
// draft intact; backend field errors are bound for inline display. Failures
// are never retried automatically.
func (f *Form) Submit(ctx context.Context) (*domain.Flight, error) {
	if f.closed {
		return nil, ErrFormClosed
	}
	if f.busy {
		return nil, ErrInFlight
	}

	f.fieldErrors = validation.Validate(&f.draft)
	if !f.fieldErrors.Empty() {
		return nil, ErrInvalidDraft
	}

	f.busy = true
	defer func() { f.busy = false }()

	payload := f.buildPayload()

	var (
		flight *domain.Flight
		err    error
		action string
	)
	if f.IsEdit() {
		action = "flight_updated"
		flight, err = f.mgr.platform.UpdateFlight(ctx, f.mgr.operatorID, f.flightID, payload)
	} else {
		action = "flight_created"
		flight, err = f.mgr.platform.CreateFlight(ctx, f.mgr.operatorID, payload)
	}
	if err != nil {
		var verr *platform.ValidationError
		if errors.As(err, &verr) {
			for field, msgs := range verr.Fields {
				f.fieldErrors[field] = msgs
			}
		}
		return nil, err
	}

	f.mgr.store.Upsert(*flight)
	f.mgr.invalidateCaches(ctx)
	f.mgr.recordActivity(ctx, action, flight.ID, payload)
	f.mgr.publish(ctx, action, flight)

	f.closed = true
	return flight, nil
}

// Delete opens the confirmation step. No request is issued until
// ConfirmDelete.
func (f *Form) Delete() error {
	if !f.IsEdit() {
		return ErrNotPersisted
	}
	if f.closed {
		return ErrFormClosed
	}
	if f.busy {
		return ErrInFlight
	}
	f.confirmingDelete = true
	return nil
}

// CancelDelete dismisses the confirmation and returns the form to idle.
func (f *Form) CancelDelete() {
	f.confirmingDelete = false
}

// ConfirmDelete issues the DELETE request exactly once. On success the
// flight leaves the store, both cache keys are invalidated and the form
// closes. On failure the confirmation is dismissed but the form stays open.
func (f *Form) ConfirmDelete(ctx context.Context) error {
	if f.closed {
		return ErrFormClosed
	}
	if !f.confirmingDelete {
		return ErrDeleteNotRequested
	}
	if f.busy {
		return ErrInFlight
	}

	f.busy = true
	defer func() { f.busy = false }()

	if err := f.mgr.platform.DeleteFlight(ctx, f.mgr.operatorID, f.flightID); err != nil {
		f.confirmingDelete = false
		return err
	}

	f.mgr.store.Remove(f.flightID)
	f.mgr.invalidateCaches(ctx)
	f.mgr.recordActivity(ctx, "flight_deleted", f.flightID, platform.FlightPayload{})
	f.mgr.publishDeleted(ctx, f.flightID, f.draft)

	f.confirmingDelete = false
	f.closed = true
	return nil
}

// Close discards the draft. A request that was already issued before the
// close still lands in the store and caches when it completes.
func (f *Form) Close() {
	f.closed = true
	f.confirmingDelete = false
}

// buildPayload turns the draft into the wire shape the backend expects:
// Seats flights get the combined "YYYY-MM-DD HH:mm" departure stamp while
// Charter flights always send an empty departure_date, even when stale
// date/time values linger in the draft. is_empty_leg goes out as the
// string literal "true"/"false" required by the backend contract.
func (f *Form) buildPayload() platform.FlightPayload {
	departure := ""
	if f.draft.RouteType == domain.RouteTypeSeats {
		departure = strings.TrimSpace(f.draft.DepartureDate) + " " + strings.TrimSpace(f.draft.DepartureTime)
	}

	return platform.FlightPayload{
		AircraftID:         f.draft.AircraftID,
		DepartureAirportID: f.draft.DepartureAirportID,
		ArrivalAirportID:   f.draft.ArrivalAirportID,
		DepartureDate:      departure,
		EstimatedDuration:  strings.TrimSpace(f.draft.EstimatedDuration),
		Status:             string(f.draft.Status),
		OneWayPriceUSD:     f.draft.OneWayPriceUSD,
		RoundTripPriceUSD:  f.draft.RoundTripPriceUSD,
		IsEmptyLeg:         strconv.FormatBool(f.draft.IsEmptyLeg),
		RouteType:          string(f.draft.RouteType),
		OperatorTimezone:   f.mgr.operatorTimezone,
	}
}

func (m *Manager) invalidateCaches(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.InvalidateFlightData(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate flight caches: %v", err)
	}
}

func (m *Manager) recordActivity(ctx context.Context, action, flightID string, payload platform.FlightPayload) {
	if m.activity == nil {
		return
	}
	snapshot, err := json.Marshal(payload)
	if err != nil {
		snapshot = nil
	}
	entry := &repository.ActivityEntry{
		ID:         uuid.NewString(),
		OperatorID: m.operatorID,
		FlightID:   flightID,
		Action:     action,
		Payload:    snapshot,
		CreatedAt:  time.Now(),
	}
	if err := m.activity.Record(ctx, entry); err != nil {
		log.Printf("WARNING: failed to record %s activity for flight %s: %v", action, flightID, err)
	}
}

func (m *Manager) publish(ctx context.Context, eventType string, flight *domain.Flight) {
	m.publishEvent(ctx, eventType, flight.ID, string(flight.RouteType), string(flight.Status))
}

func (m *Manager) publishDeleted(ctx context.Context, flightID string, draft domain.FlightDraft) {
	m.publishEvent(ctx, "flight_deleted", flightID, string(draft.RouteType), string(draft.Status))
}
