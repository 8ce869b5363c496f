// Package usecase contains the business logic for travel search
// operations. It validates queries, delegates to the provider port, and
// records the outcome of every search.
package usecase

import (
	"context"
	"encoding/json"

	"github.com/travel-search/travel-search-mcp/internal/domain"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/timeutil"
)

// TravelSearchUseCase defines the interface for travel search operations.
type TravelSearchUseCase interface {
	// SearchFlights validates the query and runs a flight search.
	SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResponse, error)

	// SearchHotels validates the query and runs a hotel or vacation
	// rental search.
	SearchHotels(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResponse, error)

	// HotelDetails validates the token and looks up a single property.
	// The provider's detail payload is returned verbatim.
	HotelDetails(ctx context.Context, query domain.HotelDetailsQuery) (json.RawMessage, error)
}

// travelSearchUseCase implements TravelSearchUseCase over a single
// aggregator provider.
type travelSearchUseCase struct {
	provider domain.TravelProvider
	clock    timeutil.Clock
	log      *logger.Logger
}

// NewTravelSearchUseCase creates a TravelSearchUseCase backed by the
// given provider. A nil clock defaults to the system clock; a nil
// logger disables logging.
func NewTravelSearchUseCase(provider domain.TravelProvider, clock timeutil.Clock, log *logger.Logger) TravelSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &travelSearchUseCase{
		provider: provider,
		clock:    clock,
		log:      log,
	}
}

// SearchFlights implements TravelSearchUseCase.SearchFlights.
func (uc *travelSearchUseCase) SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResponse, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start := uc.clock.Now()
	result, err := uc.provider.SearchFlights(ctx, query)
	elapsed := uc.clock.Now().Sub(start)

	if err != nil {
		uc.log.Error().
			Err(err).
			Str("provider", uc.provider.Name()).
			Str("origin", query.Origin).
			Str("destination", query.Destination).
			Dur("elapsed", elapsed).
			Msg("Flight search failed")
		return nil, err
	}

	uc.log.Info().
		Str("provider", uc.provider.Name()).
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("total_results", result.Summary.TotalResults).
		Dur("elapsed", elapsed).
		Msg("Flight search completed")

	return result, nil
}

// SearchHotels implements TravelSearchUseCase.SearchHotels.
func (uc *travelSearchUseCase) SearchHotels(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResponse, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start := uc.clock.Now()
	result, err := uc.provider.SearchHotels(ctx, query)
	elapsed := uc.clock.Now().Sub(start)

	if err != nil {
		uc.log.Error().
			Err(err).
			Str("provider", uc.provider.Name()).
			Str("location", query.Location).
			Bool("vacation_rentals", query.VacationRentals).
			Dur("elapsed", elapsed).
			Msg("Hotel search failed")
		return nil, err
	}

	uc.log.Info().
		Str("provider", uc.provider.Name()).
		Str("location", query.Location).
		Bool("vacation_rentals", query.VacationRentals).
		Int("total_results", result.Summary.TotalResults).
		Dur("elapsed", elapsed).
		Msg("Hotel search completed")

	return result, nil
}

// HotelDetails implements TravelSearchUseCase.HotelDetails.
func (uc *travelSearchUseCase) HotelDetails(ctx context.Context, query domain.HotelDetailsQuery) (json.RawMessage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start := uc.clock.Now()
	details, err := uc.provider.HotelDetails(ctx, query)
	elapsed := uc.clock.Now().Sub(start)

	if err != nil {
		uc.log.Error().
			Err(err).
			Str("provider", uc.provider.Name()).
			Dur("elapsed", elapsed).
			Msg("Hotel detail lookup failed")
		return nil, err
	}

	uc.log.Info().
		Str("provider", uc.provider.Name()).
		Dur("elapsed", elapsed).
		Msg("Hotel detail lookup completed")

	return details, nil
}
