package search

import (
	"log/slog"

	"github.com/evcraddock/stay-finder/internal/stay"
)

// Theme is the page appearance. It has no effect on filtering.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Session is one visitor's view of the catalog: the committed filter, the
// staging controls, and the theme. A Session is not safe for concurrent use.
type Session struct {
	catalog []stay.Listing
	filter  Filter
	stager  Stager
	theme   Theme
}

// NewSession starts a session over catalog with the default filter.
// The catalog is shared and must not be modified afterwards.
func NewSession(catalog []stay.Listing) *Session {
	return &Session{catalog: catalog, theme: ThemeLight}
}

// Filter returns the committed filter.
func (s *Session) Filter() Filter {
	return s.filter
}

// Stager returns the staging controls for in-place edits.
func (s *Session) Stager() *Stager {
	return &s.stager
}

// Theme returns the current theme.
func (s *Session) Theme() Theme {
	return s.theme
}

// ToggleTheme switches between light and dark.
func (s *Session) ToggleTheme() {
	s.theme = s.theme.Toggle()
}

// Locations returns the location options offered while staging.
func (s *Session) Locations() []string {
	return stay.Locations(s.catalog)
}

// OpenSearch shows the staging surface.
func (s *Session) OpenSearch() {
	s.stager.Open()
	slog.Debug("search opened", "staged", s.stager.Selection())
}

// ConfirmSearch commits the staged values, replacing the filter wholesale.
func (s *Session) ConfirmSearch() Filter {
	s.filter = s.stager.Confirm()
	slog.Debug("search confirmed", "location", s.filter.Location, "min_guests", s.filter.MinGuests)
	return s.filter
}

// DismissSearch closes the staging surface; the committed filter is untouched.
func (s *Session) DismissSearch() {
	s.stager.Dismiss()
	slog.Debug("search dismissed", "staged", s.stager.Selection())
}

// View evaluates the catalog under the committed filter.
func (s *Session) View() Result {
	return Evaluate(s.catalog, s.filter)
}
