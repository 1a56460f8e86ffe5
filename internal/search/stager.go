package search

import "fmt"

// Selection is a snapshot of the uncommitted search input.
type Selection struct {
	Location string `json:"location"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// Guests is the total staged guest count.
func (s Selection) Guests() int {
	return s.Adults + s.Children
}

// LocationLabel is the collapsed search bar text for the staged location.
func (s Selection) LocationLabel() string {
	if s.Location == AnyLocation {
		return "Choose location"
	}
	return s.Location
}

// GuestsLabel is the collapsed search bar text for the staged guests.
func (s Selection) GuestsLabel() string {
	switch n := s.Guests(); n {
	case 0:
		return "Add guests"
	case 1:
		return "1 guest"
	default:
		return fmt.Sprintf("%d guests", n)
	}
}

// Stager collects a tentative location and guest count. Nothing it does
// changes the visible stays until Confirm hands back a Filter.
//
// Confirm and Dismiss both keep the staged values, so reopening the
// surface resumes the last edits rather than the committed filter.
type Stager struct {
	sel  Selection
	open bool
}

// Selection returns the current staged values.
func (s *Stager) Selection() Selection {
	return s.sel
}

// IsOpen reports whether the staging surface is showing.
func (s *Stager) IsOpen() bool {
	return s.open
}

// Open shows the staging surface with whatever was last staged.
func (s *Stager) Open() {
	s.open = true
}

// SelectLocation stages key as the location. Unknown keys are accepted and
// simply match nothing once committed.
func (s *Stager) SelectLocation(key string) {
	next := s.sel
	next.Location = key
	s.sel = next
}

// ClearLocation stages "any location".
func (s *Stager) ClearLocation() {
	s.SelectLocation(AnyLocation)
}

// IncrementAdults adds one adult.
func (s *Stager) IncrementAdults() {
	next := s.sel
	next.Adults++
	s.sel = next
}

// DecrementAdults removes one adult, stopping at zero.
func (s *Stager) DecrementAdults() {
	next := s.sel
	next.Adults = saturatingDec(next.Adults)
	s.sel = next
}

// IncrementChildren adds one child.
func (s *Stager) IncrementChildren() {
	next := s.sel
	next.Children++
	s.sel = next
}

// DecrementChildren removes one child, stopping at zero.
func (s *Stager) DecrementChildren() {
	next := s.sel
	next.Children = saturatingDec(next.Children)
	s.sel = next
}

// Confirm closes the surface and returns the staged values as a new Filter.
func (s *Stager) Confirm() Filter {
	s.open = false
	return Filter{Location: s.sel.Location, MinGuests: s.sel.Guests()}
}

// Dismiss closes the surface without producing a Filter.
// Staged values are left as they are.
func (s *Stager) Dismiss() {
	s.open = false
}

func saturatingDec(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
