package domain

// FlightDraft is the transient form state for a flight being created or
// edited. It exists only while a form is open; the backend never sees it
// directly, only the payload built from it on submit.
//
// Price fields come in pairs: the numeric value that goes on the wire and
// the formatted text shown to the operator. The form keeps them in sync.
type FlightDraft struct {
	AircraftID         string
	DepartureAirportID string
	ArrivalAirportID   string
	RouteType          RouteType
	DepartureDate      string // "YYYY-MM-DD", only meaningful for Seats
	DepartureTime      string // "HH:mm", only meaningful for Seats
	EstimatedDuration  string // hours, operator-typed
	OneWayPriceUSD     float64
	RoundTripPriceUSD  float64
	OneWayPriceText    string
	RoundTripPriceText string
	Status             FlightStatus
	IsEmptyLeg         bool
}
