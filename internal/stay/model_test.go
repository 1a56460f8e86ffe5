package stay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationKey(t *testing.T) {
	l := Listing{City: "Paris", Country: "France"}
	assert.Equal(t, "Paris, France", LocationKey(l))
}

func TestLocationsDeduplicates(t *testing.T) {
	catalog := []Listing{
		{City: "Paris", Country: "France"},
		{City: "Rome", Country: "Italy"},
		{City: "Paris", Country: "France"},
		{City: "Paris", Country: "Texas"},
	}

	got := Locations(catalog)

	assert.Equal(t, []string{"Paris, France", "Rome, Italy", "Paris, Texas"}, got)
}

func TestLocationsEmptyCatalog(t *testing.T) {
	got := Locations(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummary(t *testing.T) {
	two := 2
	zero := 0

	tests := []struct {
		name string
		l    Listing
		want string
	}{
		{"with beds", Listing{Type: "Entire apartment", Beds: &two}, "Entire apartment · 2 beds"},
		{"beds absent", Listing{Type: "Private room"}, "Private room"},
		{"zero beds omitted", Listing{Type: "Private room", Beds: &zero}, "Private room"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.l.Summary())
		})
	}
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{4.4, "4.4"},
		{4.25, "4.25"},
		{5, "5"},
		{0, "0"},
		{3.999, "4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRating(tt.rating), "rating %v", tt.rating)
	}
}
