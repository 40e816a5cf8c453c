package domain

import "time"

type RouteType string

const (
	// RouteTypeCharter flights have no fixed departure time, they are
	// scheduled per booking.
	RouteTypeCharter RouteType = "Charter"
	// RouteTypeSeats flights run on a published schedule and are sold
	// seat by seat.
	RouteTypeSeats RouteType = "Seats"
)

type FlightStatus string

const (
	FlightStatusActive   FlightStatus = "Active"
	FlightStatusInactive FlightStatus = "Inactive"
)

type Aircraft struct {
	ID              string  `json:"id"`
	ModelName       string  `json:"model_name"`
	Registration    string  `json:"registration"`
	Capacity        int     `json:"capacity"`
	PricePerHourUSD float64 `json:"price_per_hour_usd"`
}

type Airport struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	IATACode string `json:"iata_code"`
}

// Flight is the authoritative record owned by the platform backend. The
// dashboard only mirrors it in the local store and the Redis cache.
type Flight struct {
	ID                string       `json:"id"`
	Aircraft          Aircraft     `json:"aircraft"`
	DepartureAirport  Airport      `json:"departure_airport"`
	ArrivalAirport    Airport      `json:"arrival_airport"`
	RouteType         RouteType    `json:"route_type"`
	DepartureDate     string       `json:"departure_date"` // "YYYY-MM-DD HH:mm", empty for Charter
	EstimatedDuration string       `json:"estimated_duration"`
	Status            FlightStatus `json:"status"`
	OneWayPriceUSD    float64      `json:"one_way_price_usd"`
	RoundTripPriceUSD float64      `json:"round_trip_price_usd"`
	IsEmptyLeg        bool         `json:"is_empty_leg"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// FlightWidgets holds the aggregate counters behind the dashboard cards.
type FlightWidgets struct {
	TodayFlights     int `json:"today_flights"`
	ActiveFlights    int `json:"active_flights"`
	CompletedFlights int `json:"completed_flights"`
}
