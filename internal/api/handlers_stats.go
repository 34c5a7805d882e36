package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/wordsearch/internal/search"
)

// handleTranscriptStats reports statistics over the whole transcript.
func (s *Server) handleTranscriptStats(w http.ResponseWriter, r *http.Request) {
	t, err := s.source.Transcript(r.Context())
	if err != nil {
		s.log.Warn("transcript unavailable", "source", s.source.Name(), "error", err)
		jsonError(w, "transcript unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"source":     s.source.Name(),
		"utterances": len(t),
		"parses":     s.source.Parses(),
		"stats":      search.Aggregate(t),
	})
}
