package serpapi

import (
	"fmt"
	"hash/fnv"
	"regexp"

	"github.com/travel-search/travel-search-mcp/internal/domain"
)

// whitespaceRegex matches runs of whitespace for fallback id slugs.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// SimplifyHotelResults reduces a raw property search payload to the
// compact response shape. Every raw property is projected, not just the
// returned subset: TotalResults and PriceRange reflect the full input
// even though the output list is capped at MaxProperties.
func SimplifyHotelResults(raw *HotelResults) *domain.HotelSearchResponse {
	if raw == nil {
		raw = &HotelResults{}
	}

	simplified := make([]domain.SimplifiedHotel, 0, len(raw.Properties))
	for _, p := range raw.Properties {
		simplified = append(simplified, simplifyHotelProperty(p))
	}

	summary := domain.HotelSummary{
		SearchParams: raw.SearchParameters,
		TotalResults: len(simplified),
		PriceRange:   priceRangeOf(positiveNightlyPrices(simplified)),
	}

	if len(simplified) > domain.MaxProperties {
		simplified = simplified[:domain.MaxProperties]
	}

	return &domain.HotelSearchResponse{
		Summary:    summary,
		Properties: simplified,
	}
}

// simplifyHotelProperty projects one raw property to a SimplifiedHotel.
//
// HotelID falls back to a synthesized id when the provider omits the
// token, so every record carries a non-empty identifier. PropertyToken
// is set independently from the raw token only: a property without a
// real token keeps an empty PropertyToken and cannot support a detail
// lookup, synthesized HotelID notwithstanding.
func simplifyHotelProperty(p HotelProperty) domain.SimplifiedHotel {
	hotelID := p.PropertyToken
	if hotelID == "" {
		hotelID = fallbackHotelID(p)
	}

	name := p.Name
	if name == "" {
		name = "Unknown Property"
	}

	propType := p.Type
	if propType == "" {
		propType = "hotel"
	}

	amenities := p.Amenities
	if len(amenities) > domain.MaxAmenities {
		amenities = amenities[:domain.MaxAmenities]
	}

	return domain.SimplifiedHotel{
		HotelID:       hotelID,
		Name:          name,
		Type:          propType,
		Rating:        p.OverallRating,
		Reviews:       p.Reviews,
		PricePerNight: rateValue(p.RatePerNight),
		TotalPrice:    rateValue(p.TotalRate),
		Currency:      "USD",
		Location:      p.Neighborhood,
		PropertyToken: p.PropertyToken,
		BookingLink:   p.Link,
		Amenities:     amenities,
		CheckInTime:   p.CheckInTime,
		CheckOutTime:  p.CheckOutTime,
	}
}

// fallbackHotelID synthesizes a stable identifier for a property the
// provider returned without a token: "HTL-" + the first 20 characters
// of the name with whitespace runs collapsed to single hyphens + a
// digest of the identifying fields. Repeated transforms of identical
// input produce identical ids.
func fallbackHotelID(p HotelProperty) string {
	slug := p.Name
	if len(slug) > 20 {
		slug = slug[:20]
	}
	slug = whitespaceRegex.ReplaceAllString(slug, "-")

	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s|%s", p.Name, p.Neighborhood, p.CheckInTime, p.CheckOutTime)

	return fmt.Sprintf("HTL-%s-%08x", slug, h.Sum32())
}

// rateValue extracts the numeric value of an optional rate object.
func rateValue(r *HotelRate) float64 {
	if r == nil {
		return 0
	}
	return r.ExtractedLowest
}

// positiveNightlyPrices collects nightly prices strictly greater than
// zero. Zero and absent prices are excluded from the range entirely,
// not treated as a zero price.
func positiveNightlyPrices(hotels []domain.SimplifiedHotel) []float64 {
	prices := make([]float64, 0, len(hotels))
	for _, h := range hotels {
		if h.PricePerNight > 0 {
			prices = append(prices, h.PricePerNight)
		}
	}
	return prices
}
