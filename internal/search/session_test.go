package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDefaults(t *testing.T) {
	s := NewSession(parisRomeCatalog())

	assert.Equal(t, Filter{}, s.Filter())
	assert.Equal(t, ThemeLight, s.Theme())
	assert.False(t, s.Stager().IsOpen())
	assert.Equal(t, "3 stays", s.View().Label)
}

func TestSessionConfirmExample(t *testing.T) {
	s := NewSession(parisRomeCatalog())

	s.OpenSearch()
	s.Stager().SelectLocation("Paris, France")
	s.Stager().IncrementAdults()
	s.Stager().IncrementAdults()
	f := s.ConfirmSearch()

	assert.Equal(t, Filter{Location: "Paris, France", MinGuests: 2}, f)
	assert.Equal(t, f, s.Filter())

	view := s.View()
	require.Len(t, view.Visible, 2)
	assert.Equal(t, "Small", view.Visible[0].Title)
	assert.Equal(t, "Large", view.Visible[1].Title)
	assert.Equal(t, "2 stays", view.Label)
}

func TestSessionStagingHasNoVisibleEffect(t *testing.T) {
	s := NewSession(parisRomeCatalog())
	before := s.View()

	s.OpenSearch()
	s.Stager().SelectLocation("Rome, Italy")
	s.Stager().IncrementAdults()

	assert.Equal(t, Filter{}, s.Filter())
	assert.Equal(t, before, s.View())
}

func TestSessionDismissLeavesFilterUnchanged(t *testing.T) {
	s := NewSession(parisRomeCatalog())

	s.OpenSearch()
	s.Stager().SelectLocation("Rome, Italy")
	committed := s.ConfirmSearch()

	s.OpenSearch()
	s.Stager().SelectLocation("Paris, France")
	s.Stager().IncrementAdults()
	s.Stager().IncrementAdults()
	s.Stager().IncrementAdults()
	s.DismissSearch()

	assert.Equal(t, committed, s.Filter())
	assert.Equal(t, "1 stay", s.View().Label)

	// Reopening resumes the dismissed edits, not the committed filter.
	s.OpenSearch()
	assert.Equal(t, Selection{Location: "Paris, France", Adults: 3}, s.Stager().Selection())
}

func TestSessionConfirmReplacesFilterWholesale(t *testing.T) {
	s := NewSession(parisRomeCatalog())

	s.OpenSearch()
	s.Stager().SelectLocation("Paris, France")
	s.Stager().IncrementAdults()
	s.ConfirmSearch()

	s.OpenSearch()
	s.Stager().ClearLocation()
	s.Stager().DecrementAdults()
	s.ConfirmSearch()

	assert.Equal(t, Filter{}, s.Filter())
	assert.Equal(t, "3 stays", s.View().Label)
}

func TestSessionThemeIsIndependentOfFilter(t *testing.T) {
	s := NewSession(parisRomeCatalog())
	s.OpenSearch()
	s.Stager().SelectLocation("Rome, Italy")
	s.ConfirmSearch()

	s.ToggleTheme()
	assert.Equal(t, ThemeDark, s.Theme())
	s.ToggleTheme()
	assert.Equal(t, ThemeLight, s.Theme())

	assert.Equal(t, Filter{Location: "Rome, Italy"}, s.Filter())
}

func TestSessionLocations(t *testing.T) {
	s := NewSession(parisRomeCatalog())
	assert.Equal(t, []string{"Paris, France", "Rome, Italy"}, s.Locations())
}
