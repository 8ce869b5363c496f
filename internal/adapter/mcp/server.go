// Package mcp exposes the travel search use cases as Model Context
// Protocol tools and resources. It owns the tool catalog, argument
// parsing, and the mapping of domain errors to tool errors; transports
// (stdio, streamable HTTP) are selected by the caller.
package mcp

import (
	"net/http"

	mcproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/travel-search/travel-search-mcp/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-mcp/internal/usecase"
)

// ServerName and ServerVersion identify this server to MCP clients.
const (
	ServerName    = "travel-search"
	ServerVersion = "1.0.0"
)

// Server wires the travel search use case into an MCP server.
type Server struct {
	useCase usecase.TravelSearchUseCase
	log     *logger.Logger
	mcp     *server.MCPServer
}

// NewServer creates an MCP server with all travel tools and the airport
// reference resource registered. A nil logger disables logging.
func NewServer(uc usecase.TravelSearchUseCase, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		useCase: uc,
		log:     log,
	}

	m := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)
	s.registerTools(m)
	s.registerResources(m)
	s.mcp = m

	return s
}

// registerTools adds the travel search tool catalog.
func (s *Server) registerTools(m *server.MCPServer) {
	m.AddTool(mcproto.NewTool("search_flights",
		mcproto.WithDescription("Search for flights between two airports. Returns a summary plus simplified best and other flight options."),
		mcproto.WithString("origin",
			mcproto.Required(),
			mcproto.Description("3-letter IATA code of the departure airport (e.g., JFK)"),
		),
		mcproto.WithString("destination",
			mcproto.Required(),
			mcproto.Description("3-letter IATA code of the arrival airport (e.g., LHR)"),
		),
		mcproto.WithString("departure_date",
			mcproto.Required(),
			mcproto.Description("Outbound date in YYYY-MM-DD format"),
		),
		mcproto.WithString("return_date",
			mcproto.Description("Return date in YYYY-MM-DD format. Omit for a one-way search."),
		),
		mcproto.WithNumber("adults",
			mcproto.Description("Number of adult passengers (default 1)"),
		),
	), s.handleSearchFlights)

	m.AddTool(mcproto.NewTool("search_hotels",
		mcproto.WithDescription("Search for hotels in a location. Returns a summary plus up to 10 simplified properties."),
		mcproto.WithString("location",
			mcproto.Required(),
			mcproto.Description("Place to search, e.g. a city or region"),
		),
		mcproto.WithString("check_in_date",
			mcproto.Required(),
			mcproto.Description("Check-in date in YYYY-MM-DD format"),
		),
		mcproto.WithString("check_out_date",
			mcproto.Required(),
			mcproto.Description("Check-out date in YYYY-MM-DD format"),
		),
		mcproto.WithNumber("adults",
			mcproto.Description("Number of guests (default 2)"),
		),
	), s.handleSearchHotels)

	m.AddTool(mcproto.NewTool("search_vacation_rentals",
		mcproto.WithDescription("Search for vacation rentals in a location. Same result shape as search_hotels."),
		mcproto.WithString("location",
			mcproto.Required(),
			mcproto.Description("Place to search, e.g. a city or region"),
		),
		mcproto.WithString("check_in_date",
			mcproto.Required(),
			mcproto.Description("Check-in date in YYYY-MM-DD format"),
		),
		mcproto.WithString("check_out_date",
			mcproto.Required(),
			mcproto.Description("Check-out date in YYYY-MM-DD format"),
		),
		mcproto.WithNumber("adults",
			mcproto.Description("Number of guests (default 2)"),
		),
	), s.handleSearchVacationRentals)

	m.AddTool(mcproto.NewTool("get_hotel_details",
		mcproto.WithDescription("Look up full details for a property using the propertyToken from a prior hotel search. Records without a real provider token cannot be looked up."),
		mcproto.WithString("property_token",
			mcproto.Required(),
			mcproto.Description("Opaque provider token from a prior search (propertyToken field)"),
		),
		mcproto.WithString("check_in_date",
			mcproto.Required(),
			mcproto.Description("Check-in date in YYYY-MM-DD format, matching the original search"),
		),
		mcproto.WithString("check_out_date",
			mcproto.Required(),
			mcproto.Description("Check-out date in YYYY-MM-DD format, matching the original search"),
		),
	), s.handleGetHotelDetails)
}

// registerResources adds the static reference data.
func (s *Server) registerResources(m *server.MCPServer) {
	m.AddResource(mcproto.NewResource(
		AirportsResourceURI,
		"Airport Codes",
		mcproto.WithResourceDescription("Reference list of common airports with IATA codes"),
		mcproto.WithMIMEType("application/json"),
	), s.handleAirportsResource)
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects or the process is signalled.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// HTTPHandler returns the streamable HTTP transport as an http.Handler,
// for mounting into an HTTP server.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}
