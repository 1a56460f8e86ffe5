package stay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/stay-finder/internal/db"
)

func TestReplaceAndList(t *testing.T) {
	repo := testRepo(t)
	beds := 3

	catalog := []Listing{
		{City: "Turku", Country: "Finland", Title: "B", MaxGuests: 5, Rating: 4.2, Type: "Entire apartment", Beds: &beds},
		{City: "Helsinki", Country: "Finland", Title: "A", MaxGuests: 3, Rating: 4.4, SuperHost: true},
		{City: "Oulu", Country: "Finland", Title: "C", MaxGuests: 0, Photo: "https://example.com/c.jpg"},
	}

	require.NoError(t, repo.Replace(catalog, "test"))

	got, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestReplaceOverwritesPreviousCatalog(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Replace([]Listing{
		{City: "Turku", Country: "Finland", Title: "Old", MaxGuests: 1},
		{City: "Vaasa", Country: "Finland", Title: "Old 2", MaxGuests: 1},
	}, "first"))
	require.NoError(t, repo.Replace([]Listing{
		{City: "Oslo", Country: "Norway", Title: "New", MaxGuests: 2},
	}, "second"))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Title)

	imp, err := repo.LastImport()
	require.NoError(t, err)
	require.NotNil(t, imp)
	assert.Equal(t, "second", imp.Source)
	assert.Equal(t, 1, imp.ListingCount)
}

func TestReplaceRollsBackOnConstraintFailure(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Replace([]Listing{
		{City: "Turku", Country: "Finland", Title: "Kept", MaxGuests: 1},
	}, "good"))

	err := repo.Replace([]Listing{
		{City: "Oslo", Country: "Norway", Title: "Fine", MaxGuests: 2},
		{City: "Oslo", Country: "Norway", Title: "Broken", MaxGuests: -1},
	}, "bad")
	require.Error(t, err)

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kept", got[0].Title)
}

func TestListEmpty(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.List()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	imp, err := repo.LastImport()
	require.NoError(t, err)
	assert.Nil(t, imp)
}

func testRepo(t *testing.T) *Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return NewRepository(d)
}
