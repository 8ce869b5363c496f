// Package mock provides test doubles for the travel search system.
// These mocks are designed for tests that need configurable behavior
// (delays, errors, specific responses).
package mock

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/travel-search/travel-search-mcp/internal/domain"
)

// Provider is a configurable mock implementation of domain.TravelProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and provider failures.
type Provider struct {
	name    string
	flights *domain.FlightSearchResponse
	hotels  *domain.HotelSearchResponse
	details json.RawMessage
	err     error
	delay   time.Duration

	mu         sync.Mutex
	callCounts map[string]int

	// LastFlightQuery and friends record the most recent query per
	// operation, for asserting what the caller passed through.
	LastFlightQuery  domain.FlightQuery
	LastHotelQuery   domain.HotelQuery
	LastDetailsQuery domain.HotelDetailsQuery
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:       name,
		callCounts: make(map[string]int),
	}
}

// WithFlightResponse configures the provider to return the given
// flight search response.
func (p *Provider) WithFlightResponse(resp *domain.FlightSearchResponse) *Provider {
	p.flights = resp
	return p
}

// WithHotelResponse configures the provider to return the given hotel
// search response.
func (p *Provider) WithHotelResponse(resp *domain.HotelSearchResponse) *Provider {
	p.hotels = resp
	return p
}

// WithDetails configures the provider to return the given raw detail
// payload.
func (p *Provider) WithDetails(details json.RawMessage) *Provider {
	p.details = details
	return p
}

// WithError configures the provider to return the given error from
// every operation.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// SearchFlights implements domain.TravelProvider.SearchFlights.
func (p *Provider) SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResponse, error) {
	p.record("SearchFlights")
	p.LastFlightQuery = query

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.flights, nil
}

// SearchHotels implements domain.TravelProvider.SearchHotels.
func (p *Provider) SearchHotels(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResponse, error) {
	p.record("SearchHotels")
	p.LastHotelQuery = query

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.hotels, nil
}

// HotelDetails implements domain.TravelProvider.HotelDetails.
func (p *Provider) HotelDetails(ctx context.Context, query domain.HotelDetailsQuery) (json.RawMessage, error) {
	p.record("HotelDetails")
	p.LastDetailsQuery = query

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.details, nil
}

// CallCount returns how many times the named operation was called.
// This is useful for verifying provider interactions.
func (p *Provider) CallCount(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCounts[op]
}

// Reset resets all call counts to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCounts = make(map[string]int)
}

func (p *Provider) record(op string) {
	p.mu.Lock()
	p.callCounts[op]++
	p.mu.Unlock()
}

// wait applies the configured delay while respecting cancellation.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
	return ctx.Err()
}

// Ensure Provider implements domain.TravelProvider at compile time.
var _ domain.TravelProvider = (*Provider)(nil)
