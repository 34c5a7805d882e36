package api

import (
	"net/http"
	"net/url"

	"github.com/dgallion1/wordsearch/internal/prefs"
)

// handleToggleTheme flips the theme cookie and sends the browser back.
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := prefs.ToggleTheme(r.Context(), prefs.NewCookieStore(w, r))
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Debug("theme toggled", "theme", theme)
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the same-origin path of the Referer, or "/".
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
