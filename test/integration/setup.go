// Package integration contains end-to-end tests that exercise the full
// pipeline from the provider client through the use case, against a
// local stand-in for the search aggregator.
package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/travel-search/travel-search-mcp/internal/adapter/provider/serpapi"
	"github.com/travel-search/travel-search-mcp/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-mcp/internal/usecase"
	"github.com/travel-search/travel-search-mcp/test/testutil"
)

// NewAggregatorServer starts a fake aggregator that serves canned
// fixture responses keyed on the engine parameter. Detail lookups
// (property_token present) get the detail payload.
func NewAggregatorServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case q.Get("engine") == "google_flights":
			_, _ = w.Write(testutil.LoadTestJSON(t, "flight_search_response.json"))
		case q.Get("property_token") != "":
			_, _ = w.Write([]byte(`{"name":"Grand Meridian Resort & Spa","rates":[{"source":"Official site","rate_per_night":{"extracted_lowest":210}}]}`))
		case q.Get("engine") == "google_hotels":
			_, _ = w.Write(testutil.LoadTestJSON(t, "hotel_search_response.json"))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// NewUseCase wires a use case against the given aggregator URL.
func NewUseCase(baseURL string) usecase.TravelSearchUseCase {
	client := serpapi.NewClient(baseURL, "integration-test-key", 5*time.Second)
	return usecase.NewTravelSearchUseCase(client, nil, logger.Nop())
}
