package domain

import (
	"context"
	"encoding/json"
)

// TravelProvider is the port implemented by search aggregator adapters.
// Implementations fetch raw provider payloads and return the simplified
// response shapes; all network concerns live behind this interface.
type TravelProvider interface {
	// Name returns the provider's unique identifier (e.g., "serpapi").
	Name() string

	// SearchFlights runs a flight search and returns the simplified result.
	SearchFlights(ctx context.Context, query FlightQuery) (*FlightSearchResponse, error)

	// SearchHotels runs a hotel or vacation rental search and returns the
	// simplified result.
	SearchHotels(ctx context.Context, query HotelQuery) (*HotelSearchResponse, error)

	// HotelDetails looks up a single property by token. The provider's
	// detail payload is returned as-is; it has no simplified shape.
	HotelDetails(ctx context.Context, query HotelDetailsQuery) (json.RawMessage, error)
}
