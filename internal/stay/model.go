// Package stay provides the listing domain model, catalog loading and data access.
package stay

import (
	"fmt"
	"strings"
)

// Listing is a single lodging record from the catalog.
// Listings are immutable once loaded; position in the catalog is their identity.
type Listing struct {
	City      string  `json:"city" validate:"required"`
	Country   string  `json:"country" validate:"required"`
	SuperHost bool    `json:"superHost"`
	Title     string  `json:"title" validate:"required"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	MaxGuests int     `json:"maxGuests" validate:"gte=0"`
	Type      string  `json:"type"`
	Beds      *int    `json:"beds,omitempty" validate:"omitempty,gte=0"`
	Photo     string  `json:"photo,omitempty" validate:"omitempty,url"`
}

// LocationKey returns the "City, Country" label a listing is filtered by.
// It is always derived from City and Country, never stored.
func LocationKey(l Listing) string {
	return l.City + ", " + l.Country
}

// Locations returns the distinct location keys in the catalog, ordered by
// first appearance.
func Locations(catalog []Listing) []string {
	seen := make(map[string]bool, len(catalog))
	locations := make([]string, 0, len(catalog))
	for _, l := range catalog {
		key := LocationKey(l)
		if seen[key] {
			continue
		}
		seen[key] = true
		locations = append(locations, key)
	}
	return locations
}

// Summary returns the card subtitle, e.g. "Entire apartment · 2 beds".
// The bed count is omitted when the listing doesn't carry one.
func (l Listing) Summary() string {
	if l.Beds == nil || *l.Beds == 0 {
		return l.Type
	}
	return fmt.Sprintf("%s · %d beds", l.Type, *l.Beds)
}

// FormatRating renders a rating with at most two decimals, trimming zeros.
func FormatRating(r float64) string {
	s := fmt.Sprintf("%.2f", r)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
