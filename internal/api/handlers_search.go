package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dgallion1/wordsearch/internal/prefs"
	"github.com/dgallion1/wordsearch/internal/search"
	"github.com/dgallion1/wordsearch/internal/state"
	"github.com/dgallion1/wordsearch/internal/transcript"
)

// maxPages bounds the n query parameter.
const maxPages = 1000

// runQuery replays the user's actions for one request: edit the term,
// submit, then press "show more" until pages pages are visible.
func (s *Server) runQuery(ctx context.Context, term string, pages int) state.QueryState {
	st := state.Update(state.New(s.cfg.PageSize), state.TermChanged{Term: term})
	if strings.TrimSpace(term) == "" {
		return st
	}

	t, err := s.source.Transcript(ctx)
	if err != nil {
		s.log.Warn("searching without transcript", "source", s.source.Name(), "error", err)
	}
	st = state.Run(st, t, err)

	for i := 1; i < pages && st.HasMore(); i++ {
		st = state.Update(st, state.ShowMore{})
	}
	return st
}

func pagesParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, maxPages)
}

type bucketCount struct {
	Label string
	Count int
}

type searchPage struct {
	Theme     prefs.Theme
	Term      string
	NoResults bool
	Visible   []transcript.Utterance
	Shown     int
	HasMore   bool
	MoreURL   string
	Stats     search.Stats
	AgeGroups []bucketCount
	Chart     chartView
}

func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	theme, _ := prefs.LoadTheme(r.Context(), prefs.NewCookieStore(nil, r))
	term := r.URL.Query().Get("q")
	pages := pagesParam(r)

	st := s.runQuery(r.Context(), term, pages)

	data := searchPage{
		Theme:     theme,
		Term:      st.Term,
		NoResults: st.NoResults() && st.Term != "",
		Visible:   st.Visible(),
		Shown:     len(st.Visible()),
		HasMore:   st.HasMore(),
		Stats:     st.Stats,
		Chart:     newChartView(search.Chart(st.Stats)),
	}
	for _, b := range search.Buckets {
		data.AgeGroups = append(data.AgeGroups, bucketCount{Label: b.String(), Count: st.Stats.AgeGroup(b)})
	}
	if st.HasMore() {
		data.MoreURL = "/?" + url.Values{"q": {term}, "n": {strconv.Itoa(pages + 1)}}.Encode()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.search.ExecuteTemplate(w, "layout", data); err != nil {
		s.log.Error("render search page", "error", err)
	}
}

func (s *Server) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if strings.TrimSpace(term) == "" {
		jsonError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	st := s.runQuery(r.Context(), term, pagesParam(r))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"term":          st.Term,
		"matches":       st.Visible(),
		"total_matches": len(st.Matches()),
		"has_more":      st.HasMore(),
		"stats":         st.Stats,
		"chart":         search.Chart(st.Stats),
	})
}
