// Package serpapi adapts the SerpAPI travel search engines to the
// domain's TravelProvider port. The raw response types here are narrow,
// all-optional views of a provider-controlled schema: every field may be
// absent, and absence always degrades to a default rather than an error.
package serpapi

import "encoding/json"

// FlightResults is the raw payload of a google_flights search.
type FlightResults struct {
	// BestFlights and OtherFlights are ordered lists of priced itineraries
	BestFlights  []FlightOption `json:"best_flights"`
	OtherFlights []FlightOption `json:"other_flights"`

	// PriceInsights is an opaque provider object, passed through verbatim
	PriceInsights json.RawMessage `json:"price_insights"`

	// SearchParameters echoes the request, passed through verbatim
	SearchParameters json.RawMessage `json:"search_parameters"`

	SearchMetadata *SearchMetadata `json:"search_metadata"`
}

// SearchMetadata carries the provider's display URL for the search.
type SearchMetadata struct {
	GoogleFlightsURL string `json:"google_flights_url"`
}

// FlightOption is one priced itinerary of one or more legs.
type FlightOption struct {
	Flights         []FlightLeg      `json:"flights"`
	TotalDuration   int              `json:"total_duration"`
	Price           float64          `json:"price"`
	Type            string           `json:"type"`
	BookingToken    string           `json:"booking_token"`
	DepartureToken  string           `json:"departure_token"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions"`
}

// FlightLeg is a single flight segment within an itinerary.
type FlightLeg struct {
	DepartureAirport *Airport `json:"departure_airport"`
	ArrivalAirport   *Airport `json:"arrival_airport"`
	Airline          string   `json:"airline"`
	FlightNumber     string   `json:"flight_number"`
	Legroom          string   `json:"legroom"`
	TravelClass      string   `json:"travel_class"`
}

// Airport is a named airport with its local-time string.
type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// CarbonEmissions carries the itinerary's CO2 delta against the route
// baseline. DifferencePercent is a pointer: 0 and absent are distinct.
type CarbonEmissions struct {
	DifferencePercent *int `json:"difference_percent"`
}

// HotelResults is the raw payload of a google_hotels search. The same
// shape covers vacation rental searches.
type HotelResults struct {
	Properties       []HotelProperty `json:"properties"`
	SearchParameters json.RawMessage `json:"search_parameters"`
}

// HotelProperty is one lodging property in a search result.
type HotelProperty struct {
	// PropertyToken is the opaque id used for a later detail lookup
	PropertyToken string `json:"property_token"`

	Name          string     `json:"name"`
	Type          string     `json:"type"`
	OverallRating *float64   `json:"overall_rating"`
	Reviews       *int       `json:"reviews"`
	RatePerNight  *HotelRate `json:"rate_per_night"`
	TotalRate     *HotelRate `json:"total_rate"`
	Neighborhood  string     `json:"neighborhood"`
	Link          string     `json:"link"`
	Amenities     []string   `json:"amenities"`
	CheckInTime   string     `json:"check_in_time"`
	CheckOutTime  string     `json:"check_out_time"`
}

// HotelRate is a nested rate object; only the extracted numeric value
// is consumed.
type HotelRate struct {
	ExtractedLowest float64 `json:"extracted_lowest"`
}
