package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/travel-search/travel-search-mcp/internal/domain"
)

// ProviderName is the unique identifier for the SerpAPI provider.
const ProviderName = "serpapi"

// Engine identifiers for the SerpAPI search endpoint.
const (
	engineFlights = "google_flights"
	engineHotels  = "google_hotels"
)

// Client implements domain.TravelProvider against the SerpAPI search
// endpoint. One tool call maps to one outbound GET; responses are
// decoded into the raw view types and simplified before returning.
// The client performs no caching and no retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint and API key.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider's unique identifier.
func (c *Client) Name() string {
	return ProviderName
}

// SearchFlights implements domain.TravelProvider.SearchFlights.
func (c *Client) SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResponse, error) {
	params := url.Values{}
	params.Set("engine", engineFlights)
	params.Set("departure_id", query.Origin)
	params.Set("arrival_id", query.Destination)
	params.Set("outbound_date", query.DepartureDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("currency", "USD")

	// SerpAPI type: 1 = round trip, 2 = one way
	if query.IsRoundTrip() {
		params.Set("type", "1")
		params.Set("return_date", query.ReturnDate)
	} else {
		params.Set("type", "2")
	}

	var raw FlightResults
	if err := c.get(ctx, params, &raw); err != nil {
		return nil, err
	}
	return SimplifyFlightResults(&raw), nil
}

// SearchHotels implements domain.TravelProvider.SearchHotels. Vacation
// rental searches reuse the hotel engine with a different query string;
// the response shape is identical.
func (c *Client) SearchHotels(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResponse, error) {
	q := query.Location
	if query.VacationRentals {
		q += " vacation rentals"
	}

	params := url.Values{}
	params.Set("engine", engineHotels)
	params.Set("q", q)
	params.Set("check_in_date", query.CheckInDate)
	params.Set("check_out_date", query.CheckOutDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("currency", "USD")
	if query.VacationRentals {
		params.Set("vacation_rentals", "true")
	}

	var raw HotelResults
	if err := c.get(ctx, params, &raw); err != nil {
		return nil, err
	}
	return SimplifyHotelResults(&raw), nil
}

// HotelDetails implements domain.TravelProvider.HotelDetails. The detail
// payload is provider-controlled and has no simplified shape, so it is
// returned verbatim.
func (c *Client) HotelDetails(ctx context.Context, query domain.HotelDetailsQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("engine", engineHotels)
	params.Set("property_token", query.PropertyToken)
	params.Set("check_in_date", query.CheckInDate)
	params.Set("check_out_date", query.CheckOutDate)
	params.Set("currency", "USD")

	var raw json.RawMessage
	if err := c.get(ctx, params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// get performs one GET against the search endpoint and decodes the JSON
// body into out. All failures are wrapped as *domain.ProviderError;
// transport failures and 5xx responses are marked retryable, malformed
// bodies and 4xx responses are not.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if err := ctx.Err(); err != nil {
		return domain.NewProviderError(ProviderName, err, false)
	}

	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("build request: %w", err), false)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("request failed: %w", err), true)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return domain.NewProviderError(
			ProviderName,
			fmt.Errorf("unexpected status %d", resp.StatusCode),
			resp.StatusCode >= http.StatusInternalServerError,
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("decode response: %w", err), false)
	}
	return nil
}

// Ensure Client implements the provider port at compile time.
var _ domain.TravelProvider = (*Client)(nil)
