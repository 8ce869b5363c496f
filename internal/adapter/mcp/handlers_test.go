package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-search/travel-search-mcp/internal/domain"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-mcp/internal/usecase"
	"github.com/travel-search/travel-search-mcp/test/mock"
)

// newTestServer wires a server around a mock provider and a silent
// logger, exercising the real use case in between.
func newTestServer(provider *mock.Provider) *Server {
	uc := usecase.NewTravelSearchUseCase(provider, nil, logger.Nop())
	return NewServer(uc, logger.Nop())
}

// toolRequest builds a CallToolRequest with the given arguments.
func toolRequest(name string, args map[string]any) mcproto.CallToolRequest {
	req := mcproto.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText extracts the single text payload from a tool result.
func resultText(t *testing.T, res *mcproto.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcproto.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestHandleSearchFlights_Success(t *testing.T) {
	provider := mock.NewProvider("serpapi").WithFlightResponse(&domain.FlightSearchResponse{
		Summary:      domain.FlightSummary{TotalResults: 1},
		BestFlights:  []domain.SimplifiedFlight{{Airline: "Delta", Duration: "6h 55m", Currency: "USD"}},
		OtherFlights: []domain.SimplifiedFlight{},
	})
	srv := newTestServer(provider)

	res, err := srv.handleSearchFlights(context.Background(), toolRequest("search_flights", map[string]any{
		"origin":         " jfk ",
		"destination":    "lhr",
		"departure_date": "2026-09-10",
	}))

	require.NoError(t, err)
	require.False(t, res.IsError)

	var resp domain.FlightSearchResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	assert.Equal(t, 1, resp.Summary.TotalResults)
	assert.Equal(t, "Delta", resp.BestFlights[0].Airline)

	// Airport codes are trimmed and upper-cased before validation.
	assert.Equal(t, "JFK", provider.LastFlightQuery.Origin)
	assert.Equal(t, "LHR", provider.LastFlightQuery.Destination)
}

func TestHandleSearchFlights_MissingRequiredArgument(t *testing.T) {
	provider := mock.NewProvider("serpapi")
	srv := newTestServer(provider)

	res, err := srv.handleSearchFlights(context.Background(), toolRequest("search_flights", map[string]any{
		"origin":         "JFK",
		"departure_date": "2026-09-10",
	}))

	require.NoError(t, err, "argument errors surface as tool errors, not transport errors")
	assert.True(t, res.IsError)
	assert.Equal(t, 0, provider.CallCount("SearchFlights"))
}

func TestHandleSearchFlights_ValidationMessageSurfaced(t *testing.T) {
	provider := mock.NewProvider("serpapi")
	srv := newTestServer(provider)

	res, err := srv.handleSearchFlights(context.Background(), toolRequest("search_flights", map[string]any{
		"origin":         "JFK",
		"destination":    "JFK",
		"departure_date": "2026-09-10",
	}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "origin and destination must be different")
}

func TestHandleSearchFlights_ProviderFailureIsGeneric(t *testing.T) {
	provider := mock.NewProvider("serpapi").
		WithError(domain.NewProviderError("serpapi", errors.New("dial tcp: connection refused"), true))
	srv := newTestServer(provider)

	res, err := srv.handleSearchFlights(context.Background(), toolRequest("search_flights", map[string]any{
		"origin":         "JFK",
		"destination":    "LHR",
		"departure_date": "2026-09-10",
	}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "currently unavailable")
	assert.NotContains(t, text, "connection refused", "transport details must not leak into tool output")
}

func TestHandleSearchHotels_Success(t *testing.T) {
	provider := mock.NewProvider("serpapi").WithHotelResponse(&domain.HotelSearchResponse{
		Summary:    domain.HotelSummary{TotalResults: 1},
		Properties: []domain.SimplifiedHotel{{HotelID: "tok-123456789", Name: "Grand Meridian", Currency: "USD"}},
	})
	srv := newTestServer(provider)

	res, err := srv.handleSearchHotels(context.Background(), toolRequest("search_hotels", map[string]any{
		"location":       "Bali Indonesia",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-15",
		"adults":         3,
	}))

	require.NoError(t, err)
	require.False(t, res.IsError)

	var resp domain.HotelSearchResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	assert.Equal(t, "Grand Meridian", resp.Properties[0].Name)

	assert.Equal(t, 3, provider.LastHotelQuery.Adults)
	assert.False(t, provider.LastHotelQuery.VacationRentals)
}

func TestHandleSearchVacationRentals_SetsRentalFlag(t *testing.T) {
	provider := mock.NewProvider("serpapi").WithHotelResponse(&domain.HotelSearchResponse{})
	srv := newTestServer(provider)

	res, err := srv.handleSearchVacationRentals(context.Background(), toolRequest("search_vacation_rentals", map[string]any{
		"location":       "Bali Indonesia",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-15",
	}))

	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.True(t, provider.LastHotelQuery.VacationRentals)
	assert.Equal(t, 2, provider.LastHotelQuery.Adults, "default guest count applies")
}

func TestHandleGetHotelDetails_RawPassthrough(t *testing.T) {
	detail := `{"name":"Grand Meridian","rates":[{"source":"direct"}]}`
	provider := mock.NewProvider("serpapi").WithDetails(json.RawMessage(detail))
	srv := newTestServer(provider)

	res, err := srv.handleGetHotelDetails(context.Background(), toolRequest("get_hotel_details", map[string]any{
		"property_token": "ChUIkJXwo5qEx9NZ",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-15",
	}))

	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.JSONEq(t, detail, resultText(t, res), "detail payload is not re-shaped")
}

func TestHandleGetHotelDetails_ShortTokenRejected(t *testing.T) {
	provider := mock.NewProvider("serpapi")
	srv := newTestServer(provider)

	res, err := srv.handleGetHotelDetails(context.Background(), toolRequest("get_hotel_details", map[string]any{
		"property_token": "HTL-x",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-15",
	}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "at least 10 characters")
	assert.Equal(t, 0, provider.CallCount("HotelDetails"))
}

func TestHandleAirportsResource(t *testing.T) {
	srv := newTestServer(mock.NewProvider("serpapi"))

	req := mcproto.ReadResourceRequest{}
	req.Params.URI = AirportsResourceURI

	contents, err := srv.handleAirportsResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcproto.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, AirportsResourceURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)

	var airports []Airport
	require.NoError(t, json.Unmarshal([]byte(text.Text), &airports))
	assert.NotEmpty(t, airports)

	codes := make(map[string]bool, len(airports))
	for _, a := range airports {
		assert.Len(t, a.Code, 3)
		assert.False(t, codes[a.Code], "duplicate airport code %s", a.Code)
		codes[a.Code] = true
	}
	assert.True(t, codes["JFK"])
	assert.True(t, codes["LHR"])
}
