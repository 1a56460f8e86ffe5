// Package web provides the HTTP server and handlers for the stay-finder listing page.
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/evcraddock/stay-finder/internal/logging"
	"github.com/evcraddock/stay-finder/internal/stay"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the listing page HTTP server.
type Server struct {
	catalog   []stay.Listing
	sessions  *sessionStore
	templates *template.Template
	mux       *http.ServeMux
	handler   http.Handler
}

// NewServer creates a web server over the catalog stored in db.
// The catalog is read once here and stays fixed for the server's lifetime.
func NewServer(db *sql.DB, cfg Config) (*Server, error) {
	catalog, err := stay.NewRepository(db).List()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return newServer(catalog, cfg)
}

func newServer(catalog []stay.Listing, cfg Config) (*Server, error) {
	funcMap := template.FuncMap{
		"formatRating": stay.FormatRating,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		catalog:   catalog,
		sessions:  newSessionStore(catalog, cfg.SessionTTL),
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleList)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/search/", s.handleSearchRoute)
	s.mux.HandleFunc("/theme", s.handleTheme)
	s.mux.HandleFunc("/api/stays", s.apiListStays)
	s.mux.HandleFunc("/api/locations", s.apiListLocations)

	s.handler = logging.RequestLogger(s.mux)

	slog.Info("catalog loaded", "stays", len(catalog), "locations", len(stay.Locations(catalog)))

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting web UI", "url", fmt.Sprintf("http://localhost%s", addr))
	return http.ListenAndServe(addr, s)
}
