// Package search holds the staged search controls and the committed filter
// that decides which stays are visible.
package search

import (
	"fmt"

	"github.com/evcraddock/stay-finder/internal/stay"
)

// AnyLocation is the Filter location that matches every listing.
const AnyLocation = ""

// Filter is the committed (location, guests) pair driving the visible stays.
// The zero value shows everything. A Filter is never edited in place; each
// confirmation produces a new one.
type Filter struct {
	Location  string `json:"location"`
	MinGuests int    `json:"min_guests"`
}

// Result is the derived view of the catalog under a Filter.
type Result struct {
	Visible []stay.Listing `json:"stays"`
	Label   string         `json:"label"`
}

// Matches reports whether l passes f.
func Matches(l stay.Listing, f Filter) bool {
	if f.Location != AnyLocation && stay.LocationKey(l) != f.Location {
		return false
	}
	return l.MaxGuests >= f.MinGuests
}

// Evaluate returns the listings that pass f, in catalog order, with their
// count label. The catalog is never modified.
func Evaluate(catalog []stay.Listing, f Filter) Result {
	visible := make([]stay.Listing, 0, len(catalog))
	for _, l := range catalog {
		if Matches(l, f) {
			visible = append(visible, l)
		}
	}
	return Result{Visible: visible, Label: CountLabel(len(visible))}
}

// CountLabel pluralizes the number of visible stays: "1 stay", "0 stays".
func CountLabel(n int) string {
	if n == 1 {
		return "1 stay"
	}
	return fmt.Sprintf("%d stays", n)
}
