package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	mcproto "github.com/mark3labs/mcp-go/mcp"

	"github.com/travel-search/travel-search-mcp/internal/domain"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/logger"
)

// handleSearchFlights handles the search_flights tool.
func (s *Server) handleSearchFlights(ctx context.Context, req mcproto.CallToolRequest) (*mcproto.CallToolResult, error) {
	log := s.callLogger("search_flights")

	origin, err := req.RequireString("origin")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}
	destination, err := req.RequireString("destination")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}
	departureDate, err := req.RequireString("departure_date")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}

	query := domain.FlightQuery{
		Origin:        strings.ToUpper(strings.TrimSpace(origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(destination)),
		DepartureDate: departureDate,
		ReturnDate:    req.GetString("return_date", ""),
		Adults:        req.GetInt("adults", 0),
	}

	result, err := s.useCase.SearchFlights(ctx, query)
	if err != nil {
		return s.toolError(log, err), nil
	}
	return jsonResult(log, result)
}

// handleSearchHotels handles the search_hotels tool.
func (s *Server) handleSearchHotels(ctx context.Context, req mcproto.CallToolRequest) (*mcproto.CallToolResult, error) {
	return s.searchProperties(ctx, req, false)
}

// handleSearchVacationRentals handles the search_vacation_rentals tool.
// It shares the hotel pipeline; only the upstream query differs.
func (s *Server) handleSearchVacationRentals(ctx context.Context, req mcproto.CallToolRequest) (*mcproto.CallToolResult, error) {
	return s.searchProperties(ctx, req, true)
}

// searchProperties parses the shared hotel/vacation rental arguments and
// runs the property search.
func (s *Server) searchProperties(ctx context.Context, req mcproto.CallToolRequest, rentals bool) (*mcproto.CallToolResult, error) {
	tool := "search_hotels"
	if rentals {
		tool = "search_vacation_rentals"
	}
	log := s.callLogger(tool)

	location, err := req.RequireString("location")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}
	checkIn, err := req.RequireString("check_in_date")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}
	checkOut, err := req.RequireString("check_out_date")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}

	query := domain.HotelQuery{
		Location:        strings.TrimSpace(location),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          req.GetInt("adults", 0),
		VacationRentals: rentals,
	}

	result, err := s.useCase.SearchHotels(ctx, query)
	if err != nil {
		return s.toolError(log, err), nil
	}
	return jsonResult(log, result)
}

// handleGetHotelDetails handles the get_hotel_details tool.
func (s *Server) handleGetHotelDetails(ctx context.Context, req mcproto.CallToolRequest) (*mcproto.CallToolResult, error) {
	log := s.callLogger("get_hotel_details")

	token, err := req.RequireString("property_token")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}
	checkIn, err := req.RequireString("check_in_date")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}
	checkOut, err := req.RequireString("check_out_date")
	if err != nil {
		return mcproto.NewToolResultError(err.Error()), nil
	}

	query := domain.HotelDetailsQuery{
		PropertyToken: token,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
	}

	details, err := s.useCase.HotelDetails(ctx, query)
	if err != nil {
		return s.toolError(log, err), nil
	}
	return mcproto.NewToolResultText(string(details)), nil
}

// handleAirportsResource serves the static airport reference list.
func (s *Server) handleAirportsResource(_ context.Context, req mcproto.ReadResourceRequest) ([]mcproto.ResourceContents, error) {
	data, err := json.MarshalIndent(Airports, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcproto.ResourceContents{
		mcproto.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// callLogger returns a logger carrying the tool name and a fresh
// correlation id for this invocation.
func (s *Server) callLogger(tool string) *logger.Logger {
	return s.log.WithContext("tool", tool).WithRequestID(uuid.NewString())
}

// toolError maps a domain error to a tool error result. Validation
// failures are surfaced as-is; provider failures collapse to a generic
// message so transport details never leak into tool output.
func (s *Server) toolError(log *logger.Logger, err error) *mcproto.CallToolResult {
	if errors.Is(err, domain.ErrInvalidRequest) {
		log.Warn().Err(err).Msg("Rejected tool call")
		return mcproto.NewToolResultError(err.Error())
	}

	log.Error().Err(err).Msg("Tool call failed")
	return mcproto.NewToolResultError("travel search is currently unavailable, please try again later")
}

// jsonResult serializes a simplified response as the tool's text payload.
func jsonResult(log *logger.Logger, v any) (*mcproto.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize tool result")
		return mcproto.NewToolResultError("failed to serialize result"), nil
	}
	return mcproto.NewToolResultText(string(data)), nil
}
