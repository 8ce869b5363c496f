// Package domain contains the core entities of the travel search server:
// the simplified flight and hotel records returned to MCP clients, the
// query types for each tool, and the provider port the adapters implement.
package domain

import (
	"encoding/json"
	"fmt"
)

// SimplifiedFlight is the compact projection of one priced itinerary.
// Departure fields come from the first leg, arrival fields from the last.
type SimplifiedFlight struct {
	// Airline is the first leg's airline name ("Unknown" when absent)
	Airline string `json:"airline"`

	// FlightNumber is the first leg's flight number (empty when absent)
	FlightNumber string `json:"flightNumber"`

	// Departure describes the first leg's departure point
	Departure FlightEndpoint `json:"departure"`

	// Arrival describes the last leg's arrival point
	Arrival FlightEndpoint `json:"arrival"`

	// Duration is the total travel time formatted as "{H}h {M}m"
	Duration string `json:"duration"`

	// Stops is the number of intermediate stops (legs - 1, never negative)
	Stops int `json:"stops"`

	// Price is the total itinerary price (0 when the provider omits it)
	Price float64 `json:"price"`

	// Currency is fixed to "USD"
	Currency string `json:"currency"`

	// BookingToken is an opaque provider token for external booking flows
	BookingToken string `json:"bookingToken,omitempty"`

	// DepartureToken is an opaque provider token for return-leg selection
	DepartureToken string `json:"departureToken,omitempty"`

	// Highlights holds at most 3 short human-readable feature strings
	Highlights []string `json:"highlights"`
}

// FlightEndpoint is a departure or arrival point of an itinerary.
// Time is the provider's local-time string, passed through verbatim.
type FlightEndpoint struct {
	Airport string `json:"airport"`
	Code    string `json:"code"`
	Time    string `json:"time"`
}

// PriceRange is the min/max over a set of simplified prices.
// It is omitted from summaries, not zeroed, when the set is empty.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FlightSummary describes the overall flight search outcome.
type FlightSummary struct {
	// SearchParams echoes the provider's search_parameters verbatim
	SearchParams json.RawMessage `json:"searchParams,omitempty"`

	// TotalResults counts best + other options before any output cap
	TotalResults int `json:"totalResults"`

	// PriceRange spans all simplified prices; nil when there are none
	PriceRange *PriceRange `json:"priceRange,omitempty"`

	// GoogleFlightsURL is the provider's display URL, content unvalidated
	GoogleFlightsURL string `json:"googleFlightsUrl,omitempty"`
}

// FlightSearchResponse is the flight tool's result payload.
type FlightSearchResponse struct {
	Summary FlightSummary `json:"summary"`

	// BestFlights holds every simplified best option (never truncated)
	BestFlights []SimplifiedFlight `json:"bestFlights"`

	// OtherFlights holds at most MaxOtherFlights simplified options
	OtherFlights []SimplifiedFlight `json:"otherFlights"`

	// PriceInsights is the provider's price_insights object, untouched
	PriceInsights json.RawMessage `json:"priceInsights,omitempty"`
}

// Output caps applied when assembling responses.
const (
	// MaxOtherFlights caps the otherFlights list
	MaxOtherFlights = 5

	// MaxHighlights caps the highlights of a single flight
	MaxHighlights = 3
)

// FormatDuration renders total minutes as "{H}h {M}m".
// No zero-padding and no special cases: 0 renders as "0h 0m".
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
