package domain

import (
	"fmt"
	"regexp"
	"time"
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MinPropertyTokenLength is the sanity threshold for provider property
// tokens: anything shorter cannot be a real token and is rejected before
// a detail lookup is attempted.
const MinPropertyTokenLength = 10

// FlightQuery defines the parameters for a flight search.
type FlightQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format.
	// When empty the search is one-way.
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`
}

// Validate checks if the flight query is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q *FlightQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}

	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}

	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if err := validateDate("departureDate", q.DepartureDate, true); err != nil {
		return err
	}
	if err := validateDate("returnDate", q.ReturnDate, false); err != nil {
		return err
	}

	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (q *FlightQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = 1
	}
}

// IsRoundTrip reports whether a return date was supplied.
func (q *FlightQuery) IsRoundTrip() bool {
	return q.ReturnDate != ""
}

// HotelQuery defines the parameters for a hotel or vacation rental search.
type HotelQuery struct {
	// Location is the free-text place to search (e.g., "Bali Indonesia")
	Location string `json:"location"`

	// CheckInDate is the arrival date in YYYY-MM-DD format
	CheckInDate string `json:"checkInDate"`

	// CheckOutDate is the departure date in YYYY-MM-DD format
	CheckOutDate string `json:"checkOutDate"`

	// Adults is the number of guests (default: 2)
	Adults int `json:"adults"`

	// VacationRentals routes the search to rental listings instead of
	// hotels. The result shape is identical either way.
	VacationRentals bool `json:"vacationRentals,omitempty"`
}

// Validate checks if the hotel query is valid.
func (q *HotelQuery) Validate() error {
	if q.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidRequest)
	}

	if err := validateDate("checkInDate", q.CheckInDate, true); err != nil {
		return err
	}
	if err := validateDate("checkOutDate", q.CheckOutDate, true); err != nil {
		return err
	}

	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (q *HotelQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = 2
	}
}

// HotelDetailsQuery defines the parameters for a property detail lookup.
type HotelDetailsQuery struct {
	// PropertyToken is the opaque provider token from a prior search
	PropertyToken string `json:"propertyToken"`

	// CheckInDate and CheckOutDate must match the original search dates
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// Validate checks if the detail lookup query is valid. Tokens shorter
// than MinPropertyTokenLength are rejected here rather than forwarded:
// synthesized hotel ids and truncated tokens would only produce a
// provider-side error.
func (q *HotelDetailsQuery) Validate() error {
	if q.PropertyToken == "" {
		return fmt.Errorf("%w: propertyToken is required", ErrInvalidRequest)
	}
	if len(q.PropertyToken) < MinPropertyTokenLength {
		return fmt.Errorf("%w: propertyToken must be at least %d characters, got %d",
			ErrInvalidRequest, MinPropertyTokenLength, len(q.PropertyToken))
	}

	if err := validateDate("checkInDate", q.CheckInDate, true); err != nil {
		return err
	}
	return validateDate("checkOutDate", q.CheckOutDate, true)
}

// validateDate checks a YYYY-MM-DD date field. Optional fields pass when
// empty; any non-empty value must parse as a real calendar date.
func validateDate(field, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
		}
		return nil
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}
