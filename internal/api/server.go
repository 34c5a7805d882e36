package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/wordsearch/internal/config"
	"github.com/dgallion1/wordsearch/internal/transcript"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Server is the HTTP front-end for transcript search.
type Server struct {
	router  chi.Router
	source  *transcript.Source
	log     *slog.Logger
	cfg     config.Config
	limiter *rate.Limiter
	pages   *pages
}

// NewServer creates and configures the HTTP server.
func NewServer(source *transcript.Source, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		source:  source,
		log:     log,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.APIRateLimit), cfg.APIRateBurst),
		pages:   mustParsePages(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handleSearchPage)
	r.Get("/about", s.handleAbout)
	r.Post("/theme", s.handleToggleTheme)

	r.Group(func(r chi.Router) {
		r.Use(RateLimit(s.limiter))

		r.Get("/api/search", s.handleSearchAPI)
		r.Get("/api/transcript", s.handleTranscriptStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
