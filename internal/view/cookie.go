package view

import (
	"errors"
	"net/http"
	"time"
)

// preferenceMaxAge keeps the theme cookie for a year.
const preferenceMaxAge = 365 * 24 * time.Hour

var errReadOnly = errors.New("preference store is read-only")

// CookieStore persists preferences in cookies. It satisfies
// domain.PreferenceStore. With a nil ResponseWriter it is read-only.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w, secure: r.TLS != nil}
}

// Get returns the cookie value. A missing cookie reports ok=false.
func (s *CookieStore) Get(key string) (string, bool) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Set writes the cookie on the response. The cookie is readable from
// scripts so folio.js can keep localStorage in sync.
func (s *CookieStore) Set(key, value string) error {
	if s.w == nil {
		return errReadOnly
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(preferenceMaxAge.Seconds()),
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
