package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/evcraddock/stay-finder/internal/search"
	"github.com/evcraddock/stay-finder/internal/stay"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiListStays evaluates the catalog under the filter given in the query:
// GET /api/stays?location=Helsinki,+Finland&guests=3
// It does not touch any browser session.
func (s *Server) apiListStays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f, err := parseFilter(r)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiJSON(w, search.Evaluate(s.catalog, f), http.StatusOK)
}

// apiListLocations returns the location options.
func (s *Server) apiListLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, stay.Locations(s.catalog), http.StatusOK)
}

var errBadGuests = errors.New("guests must be a non-negative integer")

// parseFilter reads a search.Filter from location and guests query params.
func parseFilter(r *http.Request) (search.Filter, error) {
	q := r.URL.Query()
	f := search.Filter{Location: q.Get("location")}

	if g := q.Get("guests"); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil || n < 0 {
			return search.Filter{}, errBadGuests
		}
		f.MinGuests = n
	}

	return f, nil
}
