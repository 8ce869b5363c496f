package serpapi

import (
	"fmt"

	"github.com/travel-search/travel-search-mcp/internal/domain"
)

// SimplifyFlightResults reduces a raw flight search payload to the
// compact response shape. It is a pure function: absent lists are
// treated as empty and no input can make it fail.
//
// TotalResults counts best + other options before OtherFlights is
// truncated, so the summary reflects the true result volume even though
// only a subset is returned.
func SimplifyFlightResults(raw *FlightResults) *domain.FlightSearchResponse {
	if raw == nil {
		raw = &FlightResults{}
	}

	best := make([]domain.SimplifiedFlight, 0, len(raw.BestFlights))
	for _, opt := range raw.BestFlights {
		best = append(best, simplifyFlightOption(opt))
	}

	other := make([]domain.SimplifiedFlight, 0, len(raw.OtherFlights))
	for _, opt := range raw.OtherFlights {
		other = append(other, simplifyFlightOption(opt))
	}

	summary := domain.FlightSummary{
		SearchParams: raw.SearchParameters,
		TotalResults: len(best) + len(other),
		PriceRange:   priceRangeOf(flightPrices(best, other)),
	}
	if raw.SearchMetadata != nil {
		summary.GoogleFlightsURL = raw.SearchMetadata.GoogleFlightsURL
	}

	if len(other) > domain.MaxOtherFlights {
		other = other[:domain.MaxOtherFlights]
	}

	return &domain.FlightSearchResponse{
		Summary:       summary,
		BestFlights:   best,
		OtherFlights:  other,
		PriceInsights: raw.PriceInsights,
	}
}

// simplifyFlightOption projects one raw itinerary to a SimplifiedFlight.
// Departure fields come from the first leg and arrival fields from the
// last; with no legs both default to empty endpoints and the duration
// still formats from the raw total.
func simplifyFlightOption(opt FlightOption) domain.SimplifiedFlight {
	var first, last FlightLeg
	if n := len(opt.Flights); n > 0 {
		first = opt.Flights[0]
		last = opt.Flights[n-1]
	}

	stops := 0
	if len(opt.Flights) > 1 {
		stops = len(opt.Flights) - 1
	}

	airline := first.Airline
	if airline == "" {
		airline = "Unknown"
	}

	// A leg without an arrival airport (seen on single-leg round trip
	// options) falls back to its departure airport so the arrival
	// fields stay populated.
	arrivalAirport := last.ArrivalAirport
	if arrivalAirport == nil {
		arrivalAirport = last.DepartureAirport
	}

	return domain.SimplifiedFlight{
		Airline:        airline,
		FlightNumber:   first.FlightNumber,
		Departure:      endpointOf(first.DepartureAirport),
		Arrival:        endpointOf(arrivalAirport),
		Duration:       domain.FormatDuration(opt.TotalDuration),
		Stops:          stops,
		Price:          opt.Price,
		Currency:       "USD",
		BookingToken:   opt.BookingToken,
		DepartureToken: opt.DepartureToken,
		Highlights:     flightHighlights(opt, first),
	}
}

// flightHighlights extracts at most MaxHighlights feature strings in a
// fixed priority order: CO2 savings, legroom, travel class, trip type.
func flightHighlights(opt FlightOption, first FlightLeg) []string {
	highlights := make([]string, 0, domain.MaxHighlights)

	if ce := opt.CarbonEmissions; ce != nil && ce.DifferencePercent != nil && *ce.DifferencePercent < 0 {
		highlights = append(highlights, fmt.Sprintf("%d%% less CO2", -*ce.DifferencePercent))
	}
	if first.Legroom != "" {
		highlights = append(highlights, "Legroom: "+first.Legroom)
	}
	if first.TravelClass != "" {
		highlights = append(highlights, first.TravelClass)
	}
	if opt.Type != "" {
		highlights = append(highlights, opt.Type)
	}

	if len(highlights) > domain.MaxHighlights {
		highlights = highlights[:domain.MaxHighlights]
	}
	return highlights
}

// endpointOf converts an optional raw airport to a flight endpoint,
// defaulting every field to the empty string.
func endpointOf(a *Airport) domain.FlightEndpoint {
	if a == nil {
		return domain.FlightEndpoint{}
	}
	return domain.FlightEndpoint{
		Airport: a.Name,
		Code:    a.ID,
		Time:    a.Time,
	}
}

// flightPrices concatenates the prices of both simplified lists.
func flightPrices(best, other []domain.SimplifiedFlight) []float64 {
	prices := make([]float64, 0, len(best)+len(other))
	for _, f := range best {
		prices = append(prices, f.Price)
	}
	for _, f := range other {
		prices = append(prices, f.Price)
	}
	return prices
}

// priceRangeOf returns the min/max over the given prices, or nil when
// there are none. An empty set yields no range rather than {0, 0}.
func priceRangeOf(prices []float64) *domain.PriceRange {
	if len(prices) == 0 {
		return nil
	}
	pr := &domain.PriceRange{Min: prices[0], Max: prices[0]}
	for _, p := range prices[1:] {
		if p < pr.Min {
			pr.Min = p
		}
		if p > pr.Max {
			pr.Max = p
		}
	}
	return pr
}
