// Package validation builds the required-field rules for flight drafts,
// including the conditional rules that depend on the route type.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/BoysInc/volair-dashboard-sub000/internal/domain"
)

// FieldErrors maps a draft field name to its user-facing messages. The
// field names match the wire names of the platform API so backend
// validation errors can be bound to the same keys.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func (e FieldErrors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Rule is a single named check against the draft. Check returns true when
// the draft satisfies the rule.
type Rule struct {
	Field   string
	Message string
	Check   func(d *domain.FlightDraft) bool
}

// RulesFor returns the conditional rules for the given route type. Seats
// flights run on a published schedule and need a departure date and time;
// Charter flights have neither, so the set is empty. The function is pure
// and must be re-invoked whenever the route type changes so a previously
// required field becomes satisfiable immediately.
func RulesFor(routeType domain.RouteType) []Rule {
	if routeType != domain.RouteTypeSeats {
		return nil
	}
	return []Rule{
		{
			Field:   "departure_date",
			Message: "Departure date is required for scheduled flights",
			Check: func(d *domain.FlightDraft) bool {
				return strings.TrimSpace(d.DepartureDate) != ""
			},
		},
		{
			Field:   "departure_time",
			Message: "Departure time is required for scheduled flights",
			Check: func(d *domain.FlightDraft) bool {
				return strings.TrimSpace(d.DepartureTime) != ""
			},
		},
	}
}

// StandardRules returns the rules applied to every draft regardless of
// route type.
func StandardRules() []Rule {
	return []Rule{
		{
			Field:   "aircraft_id",
			Message: "Aircraft is required",
			Check:   func(d *domain.FlightDraft) bool { return d.AircraftID != "" },
		},
		{
			Field:   "departure_airport_id",
			Message: "Departure airport is required",
			Check:   func(d *domain.FlightDraft) bool { return d.DepartureAirportID != "" },
		},
		{
			Field:   "arrival_airport_id",
			Message: "Arrival airport is required",
			Check:   func(d *domain.FlightDraft) bool { return d.ArrivalAirportID != "" },
		},
		{
			Field:   "arrival_airport_id",
			Message: "Arrival airport must differ from departure airport",
			Check: func(d *domain.FlightDraft) bool {
				return d.ArrivalAirportID == "" || d.ArrivalAirportID != d.DepartureAirportID
			},
		},
		{
			Field:   "route_type",
			Message: "Route type is required",
			Check: func(d *domain.FlightDraft) bool {
				return d.RouteType == domain.RouteTypeCharter || d.RouteType == domain.RouteTypeSeats
			},
		},
		{
			Field:   "estimated_duration",
			Message: "Estimated duration must be a positive number of hours",
			Check: func(d *domain.FlightDraft) bool {
				v, err := strconv.ParseFloat(strings.TrimSpace(d.EstimatedDuration), 64)
				return err == nil && v > 0 && !math.IsInf(v, 0)
			},
		},
		{
			Field:   "one_way_price_usd",
			Message: "One way price cannot be negative",
			Check:   func(d *domain.FlightDraft) bool { return d.OneWayPriceUSD >= 0 },
		},
		{
			Field:   "round_trip_price_usd",
			Message: "Round trip price cannot be negative",
			Check:   func(d *domain.FlightDraft) bool { return d.RoundTripPriceUSD >= 0 },
		},
		{
			Field:   "status",
			Message: "Status is required",
			Check: func(d *domain.FlightDraft) bool {
				return d.Status == domain.FlightStatusActive || d.Status == domain.FlightStatusInactive
			},
		},
	}
}

// Validate runs the standard rules merged with the conditional rules for
// the draft's current route type and collects every violation.
func Validate(d *domain.FlightDraft) FieldErrors {
	errs := FieldErrors{}
	for _, rule := range append(StandardRules(), RulesFor(d.RouteType)...) {
		if !rule.Check(d) {
			errs.Add(rule.Field, rule.Message)
		}
	}
	return errs
}
