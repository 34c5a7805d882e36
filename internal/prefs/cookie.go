package prefs

import (
	"context"
	"net/http"
	"time"
)

// CookieStore keeps preferences in browser cookies, one cookie per key.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCookieStore binds a store to one request/response pair. w may be nil
// for read-only use.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return c.Value, true, nil
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	if s.w == nil {
		return http.ErrNotSupported
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
