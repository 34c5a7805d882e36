package api

import (
	"html/template"
	"net/http"

	"github.com/dgallion1/wordsearch/internal/prefs"
)

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	theme, _ := prefs.LoadTheme(r.Context(), prefs.NewCookieStore(nil, r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.pages.about.ExecuteTemplate(w, "layout", struct {
		Theme prefs.Theme
		Body  template.HTML
	}{theme, s.pages.aboutHTML})
	if err != nil {
		s.log.Error("render about page", "error", err)
	}
}
