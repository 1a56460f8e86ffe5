package web

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evcraddock/stay-finder/internal/search"
	"github.com/evcraddock/stay-finder/internal/stay"
)

const cookieName = "sf_session"

type sessionEntry struct {
	session  *search.Session
	lastSeen time.Time
}

// sessionStore keeps one search.Session per browser, in memory only.
// A single mutex serializes every session operation, so each browser's
// actions are applied strictly in the order they arrive.
type sessionStore struct {
	mu      sync.Mutex
	catalog []stay.Listing
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*sessionEntry
}

func newSessionStore(catalog []stay.Listing, ttl time.Duration) *sessionStore {
	return &sessionStore{
		catalog: catalog,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry),
	}
}

// with runs fn against the caller's session, creating one (and its cookie)
// when the request has none or it has expired.
func (s *sessionStore) with(w http.ResponseWriter, r *http.Request, fn func(*search.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, id := s.lookup(r, now)
	if entry == nil {
		s.sweep(now)
		id = uuid.NewString()
		entry = &sessionEntry{session: search.NewSession(s.catalog)}
		s.entries[id] = entry
		slog.Debug("session started", "session", id)
	}
	entry.lastSeen = now

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		Expires:  now.Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	fn(entry.session)
}

// lookup returns the live session named by the request cookie, if any.
func (s *sessionStore) lookup(r *http.Request, now time.Time) (*sessionEntry, string) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil, ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return nil, ""
	}
	entry, ok := s.entries[cookie.Value]
	if !ok || now.Sub(entry.lastSeen) > s.ttl {
		return nil, ""
	}
	return entry, cookie.Value
}

// sweep drops idle sessions. Callers must hold mu.
func (s *sessionStore) sweep(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}

// count returns the number of tracked sessions.
func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
