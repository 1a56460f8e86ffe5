package stay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `[
		{"city":"Paris","country":"France","title":"Loft","maxGuests":2,"rating":4.1,"type":"Entire loft","beds":1},
		{"city":"Rome","country":"Italy","title":"Room","maxGuests":4,"rating":3.9,"type":"Private room","beds":null,"superHost":true}
	]`

	catalog, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "Paris", catalog[0].City)
	require.NotNil(t, catalog[0].Beds)
	assert.Equal(t, 1, *catalog[0].Beds)
	assert.Nil(t, catalog[1].Beds)
	assert.True(t, catalog[1].SuperHost)
	assert.Equal(t, 4, catalog[1].MaxGuests)
}

func TestDecodeEmpty(t *testing.T) {
	catalog, err := Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, catalog)
	assert.Empty(t, catalog)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"city":`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	negBeds := -1

	tests := []struct {
		name      string
		listing   Listing
		wantField string
	}{
		{"valid", Listing{City: "Oslo", Country: "Norway", Title: "Cabin", MaxGuests: 2, Rating: 4}, ""},
		{"missing city", Listing{Country: "Norway", Title: "Cabin", MaxGuests: 2}, "city"},
		{"missing title", Listing{City: "Oslo", Country: "Norway", MaxGuests: 2}, "title"},
		{"negative guests", Listing{City: "Oslo", Country: "Norway", Title: "Cabin", MaxGuests: -1}, "maxGuests"},
		{"rating too high", Listing{City: "Oslo", Country: "Norway", Title: "Cabin", Rating: 5.5}, "rating"},
		{"negative beds", Listing{City: "Oslo", Country: "Norway", Title: "Cabin", Beds: &negBeds}, "beds"},
		{"bad photo", Listing{City: "Oslo", Country: "Norway", Title: "Cabin", Photo: "not a url"}, "photo"},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]Listing{tt.listing})
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Equal(t, 0, verrs[0].Index)
		})
	}
}

func TestValidateReportsEveryListing(t *testing.T) {
	catalog := []Listing{
		{City: "Oslo", Country: "Norway", Title: "Cabin"},
		{Country: "Norway", Title: "Cabin"},
		{City: "Bergen", Country: "Norway", Title: "Flat", MaxGuests: -3},
	}

	err := NewValidator().Validate(catalog)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, 1, verrs[0].Index)
	assert.Equal(t, 2, verrs[1].Index)
	assert.Contains(t, err.Error(), "2 error(s)")
}

func TestLoadFile(t *testing.T) {
	catalog, err := LoadFile(filepath.Join("testdata", "stays.json"))
	require.NoError(t, err)
	require.Len(t, catalog, 4)

	assert.Equal(t, "Helsinki, Finland", LocationKey(catalog[0]))
	assert.Nil(t, catalog[3].Beds)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadFileInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"city":"Oslo","country":"Norway","title":"Cabin","maxGuests":-2}]`), 0o600))

	_, err := LoadFile(path)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "maxGuests", verrs[0].Field)
}
