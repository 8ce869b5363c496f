package domain

import "encoding/json"

// SimplifiedHotel is the compact projection of one lodging property.
// The same shape serves hotel and vacation rental searches.
type SimplifiedHotel struct {
	// HotelID is the provider's property_token, or a synthesized fallback
	// id when the token is absent. A synthesized id is NOT usable for a
	// detail lookup; see PropertyToken.
	HotelID string `json:"hotelId"`

	// Name is the property name ("Unknown Property" when absent)
	Name string `json:"name"`

	// Type is the property category ("hotel" when absent)
	Type string `json:"type"`

	// Rating is the overall guest rating, when the provider reports one
	Rating *float64 `json:"rating,omitempty"`

	// Reviews is the review count, when the provider reports one
	Reviews *int `json:"reviews,omitempty"`

	// PricePerNight is the extracted nightly rate (0 when absent)
	PricePerNight float64 `json:"pricePerNight"`

	// TotalPrice is the extracted total rate for the stay (0 when absent)
	TotalPrice float64 `json:"totalPrice"`

	// Currency is fixed to "USD"
	Currency string `json:"currency"`

	// Location is the neighborhood or area description
	Location string `json:"location"`

	// PropertyToken is the raw provider token, or empty when the provider
	// omitted it. It is never backfilled from a synthesized HotelID: a
	// property without a real token cannot support get_hotel_details.
	PropertyToken string `json:"propertyToken"`

	// BookingLink is a direct booking URL, when available
	BookingLink string `json:"bookingLink,omitempty"`

	// Amenities holds at most MaxAmenities entries, omitted when absent
	Amenities []string `json:"amenities,omitempty"`

	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
}

// HotelSummary describes the overall property search outcome.
type HotelSummary struct {
	// SearchParams echoes the provider's search_parameters verbatim
	SearchParams json.RawMessage `json:"searchParams,omitempty"`

	// TotalResults counts all raw properties before the output cap
	TotalResults int `json:"totalResults"`

	// PriceRange spans properties with a strictly positive nightly price;
	// nil when none qualify
	PriceRange *PriceRange `json:"priceRange,omitempty"`
}

// HotelSearchResponse is the hotel and vacation rental tools' result payload.
type HotelSearchResponse struct {
	Summary HotelSummary `json:"summary"`

	// Properties holds at most MaxProperties simplified records
	Properties []SimplifiedHotel `json:"properties"`
}

// Output caps applied when assembling hotel responses.
const (
	// MaxProperties caps the properties list
	MaxProperties = 10

	// MaxAmenities caps the amenities of a single property
	MaxAmenities = 5
)
