package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/evcraddock/stay-finder/internal/search"
)

type pageData struct {
	Result     search.Result
	Filter     search.Filter
	Staged     search.Selection
	SearchOpen bool
	Locations  []string
	Theme      search.Theme
}

// snapshot copies everything the page needs out of a session.
func snapshot(sess *search.Session) pageData {
	return pageData{
		Result:     sess.View(),
		Filter:     sess.Filter(),
		Staged:     sess.Stager().Selection(),
		SearchOpen: sess.Stager().IsOpen(),
		Locations:  sess.Locations(),
		Theme:      sess.Theme(),
	}
}

// handleList renders the listing page for the caller's session.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var data pageData
	s.sessions.with(w, r, func(sess *search.Session) {
		data = snapshot(sess)
	})
	s.render(w, "list.html", data)
}

// handleHealth reports that the server is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// searchActions maps /search/{action} to the session change it makes.
var searchActions = map[string]func(sess *search.Session, r *http.Request){
	"open":    func(sess *search.Session, _ *http.Request) { sess.OpenSearch() },
	"dismiss": func(sess *search.Session, _ *http.Request) { sess.DismissSearch() },
	"confirm": func(sess *search.Session, _ *http.Request) { sess.ConfirmSearch() },
	"location": func(sess *search.Session, r *http.Request) {
		if loc := r.FormValue("location"); loc != "" {
			sess.Stager().SelectLocation(loc)
		} else {
			sess.Stager().ClearLocation()
		}
	},
	"adults/inc":   func(sess *search.Session, _ *http.Request) { sess.Stager().IncrementAdults() },
	"adults/dec":   func(sess *search.Session, _ *http.Request) { sess.Stager().DecrementAdults() },
	"children/inc": func(sess *search.Session, _ *http.Request) { sess.Stager().IncrementChildren() },
	"children/dec": func(sess *search.Session, _ *http.Request) { sess.Stager().DecrementChildren() },
}

// handleSearchRoute routes POST /search/{action} requests.
func (s *Server) handleSearchRoute(w http.ResponseWriter, r *http.Request) {
	action, ok := searchActions[strings.TrimPrefix(r.URL.Path, "/search/")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s.mutate(w, r, func(sess *search.Session) { action(sess, r) })
}

// handleTheme toggles dark mode for the caller's session.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mutate(w, r, func(sess *search.Session) { sess.ToggleTheme() })
}

// mutate applies fn to the caller's session, then answers with the page
// body for HTMX requests or a redirect back to the list otherwise.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*search.Session)) {
	var data pageData
	s.sessions.with(w, r, func(sess *search.Session) {
		fn(sess)
		data = snapshot(sess)
	})

	if r.Header.Get("HX-Request") == "true" {
		s.renderPartial(w, "page-body", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// render executes a full page template with layout.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

// renderPartial executes a named template block (no layout).
func (s *Server) renderPartial(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering partial: %v", err), http.StatusInternalServerError)
	}
}
